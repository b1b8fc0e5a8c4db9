package schemas

import (
	"encoding/json"
	"testing"

	"blog-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRequestToEntity(t *testing.T) {
	title, body, published := "t", "b", true
	author := uint(3)
	b := BlogRequest{Title: &title, Body: &body, Published: &published, AuthorID: &author}.ToEntity()

	assert.Zero(t, b.ID)
	assert.Equal(t, "t", b.Title)
	assert.Equal(t, "b", b.Body)
	assert.True(t, b.Published)
	require.NotNil(t, b.AuthorID)
	assert.Equal(t, uint(3), *b.AuthorID)
}

func TestNewShowBlogResolvesAuthor(t *testing.T) {
	author := &entities.User{ID: 1, Name: "ann", Email: "ann@example.com", Password: "hash",
		Blogs: []entities.Blog{{ID: 7, Title: "first", Body: "x", Published: true}}}
	blog := &entities.Blog{ID: 7, Title: "first", Body: "x", Published: true, Author: author}

	show := NewShowBlog(blog)
	require.NotNil(t, show.Author)
	assert.Equal(t, "ann", show.Author.Name)
	assert.Equal(t, []BlogSummary{{Title: "first", Body: "x", Published: true}}, show.Author.Blogs)

	orphan := NewShowBlog(&entities.Blog{Title: "lonely"})
	assert.Nil(t, orphan.Author)
}

func TestShowUserOmitsPassword(t *testing.T) {
	u := &entities.User{ID: 1, Name: "ann", Email: "ann@example.com", Password: "$2a$10$hash"}
	raw, err := json.Marshal(NewShowUser(u))
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"ann","email":"ann@example.com","blogs":[]}`, string(raw))
	assert.NotContains(t, string(raw), "password")
}

func TestNewBlogsKeepsOrder(t *testing.T) {
	out := NewBlogs([]entities.Blog{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}})
	require.Len(t, out, 2)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(1), out[1].ID)
	assert.Empty(t, NewBlogs(nil))
}

func TestUserRequestsKeepEmptyStrings(t *testing.T) {
	var req UserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"","email":"e@example.com","password":""}`), &req))
	require.NotNil(t, req.Name)
	require.NotNil(t, req.Password)

	u := req.ToEntity()
	assert.Equal(t, "", u.Name)
	assert.Equal(t, "e@example.com", u.Email)
	assert.Empty(t, u.Password)
	assert.Equal(t, "", req.PlainPassword())

	name := "ann"
	upd := UserUpdateRequest{Name: &name}.ToEntity(4)
	assert.Equal(t, uint(4), upd.ID)
	assert.Equal(t, "ann", upd.Name)
	assert.Equal(t, "", upd.Email)
}
