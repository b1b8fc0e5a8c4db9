package repositories

import (
	"context"
	"errors"

	"blog-server/db"
	"blog-server/entities"

	"gorm.io/gorm"
)

type blogPgRepository struct {
	db db.Database
}

func NewBlogPgRepository(database db.Database) BlogRepository {
	return &blogPgRepository{db: database}
}

func (r *blogPgRepository) Create(ctx context.Context, blog *entities.Blog) error {
	return r.db.Session(ctx).Omit("Author").Create(blog).Error
}

func (r *blogPgRepository) GetByID(ctx context.Context, id uint) (*entities.Blog, error) {
	var blog entities.Blog
	err := r.db.Session(ctx).Preload("Author").Preload("Author.Blogs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).Where("id = ?", id).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogPgRepository) GetAll(ctx context.Context) ([]entities.Blog, error) {
	var blogs []entities.Blog
	err := r.db.Session(ctx).Order("id ASC").Find(&blogs).Error
	return blogs, err
}

// Update replaces every mutable column, zero values included.
func (r *blogPgRepository) Update(ctx context.Context, blog *entities.Blog) error {
	return r.db.Session(ctx).Model(&entities.Blog{}).Where("id = ?", blog.ID).
		Select("title", "body", "published", "author_id").
		Updates(map[string]interface{}{
			"title":     blog.Title,
			"body":      blog.Body,
			"published": blog.Published,
			"author_id": blog.AuthorID,
		}).Error
}

func (r *blogPgRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Session(ctx).Where("id = ?", id).Delete(&entities.Blog{}).Error
}
