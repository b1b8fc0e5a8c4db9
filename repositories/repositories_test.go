package repositories

import (
	"context"
	"testing"

	"blog-server/db/dbtest"
	"blog-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	database := dbtest.New(t)
	users := NewUserPgRepository(database)
	blogs := NewBlogPgRepository(database)

	author := &entities.User{Name: "ann", Email: "ann@example.com", Password: "hash"}
	require.NoError(t, users.Create(ctx, author))

	blog := &entities.Blog{Title: "hello", Body: "world", Published: true, AuthorID: &author.ID}
	require.NoError(t, blogs.Create(ctx, blog))
	assert.NotZero(t, blog.ID)

	got, err := blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hello", got.Title)
	require.NotNil(t, got.Author)
	assert.Equal(t, "ann", got.Author.Name)
	require.Len(t, got.Author.Blogs, 1)

	got.Title = "changed"
	got.Published = false
	got.AuthorID = nil
	require.NoError(t, blogs.Update(ctx, got))

	got, err = blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)
	assert.False(t, got.Published)
	assert.Nil(t, got.AuthorID)
	assert.Nil(t, got.Author)

	all, err := blogs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, blogs.Delete(ctx, blog.ID))
	got, err = blogs.GetByID(ctx, blog.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlogRepositoryMissingAuthor(t *testing.T) {
	ctx := context.Background()
	blogs := NewBlogPgRepository(dbtest.New(t))

	ghost := uint(42)
	blog := &entities.Blog{Title: "t", Body: "b", AuthorID: &ghost}
	require.NoError(t, blogs.Create(ctx, blog))

	got, err := blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Author)
}

func TestUserRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	database := dbtest.New(t)
	users := NewUserPgRepository(database)
	blogs := NewBlogPgRepository(database)

	empty, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	u := &entities.User{Name: "bob", Email: "bob@example.com", Password: "hash"}
	require.NoError(t, users.Create(ctx, u))
	require.NoError(t, blogs.Create(ctx, &entities.Blog{Title: "a", Body: "1", AuthorID: &u.ID}))
	require.NoError(t, blogs.Create(ctx, &entities.Blog{Title: "b", Body: "2", AuthorID: &u.ID}))

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Blogs, 2)
	assert.Equal(t, "a", got.Blogs[0].Title)

	byEmail, err := users.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)

	require.NoError(t, users.Update(ctx, &entities.User{ID: u.ID, Name: "robert", Email: "robert@example.com"}))
	got, err = users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "robert", got.Name)
	assert.Equal(t, "hash", got.Password)

	require.NoError(t, users.Delete(ctx, u.ID))
	got, err = users.GetByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// blogs outlive their author
	remaining, err := blogs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUserPgRepository(dbtest.New(t))

	require.NoError(t, users.Create(ctx, &entities.User{Name: "a", Email: "dup@example.com", Password: "x"}))
	err := users.Create(ctx, &entities.User{Name: "b", Email: "dup@example.com", Password: "y"})
	assert.Error(t, err)
}
