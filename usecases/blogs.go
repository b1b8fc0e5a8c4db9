package usecases

import (
	"context"
	"fmt"

	"blog-server/entities"
	"blog-server/repositories"
)

type BlogUseCase struct {
	BlogRepo repositories.BlogRepository
	Notifier Notifier
}

func NewBlogUseCase(blogRepo repositories.BlogRepository, notifier Notifier) *BlogUseCase {
	return &BlogUseCase{
		BlogRepo: blogRepo,
		Notifier: notifier,
	}
}

// CreateBlog stores a new blog and fills in its ID
func (uc *BlogUseCase) CreateBlog(ctx context.Context, blog *entities.Blog) error {
	if err := uc.BlogRepo.Create(ctx, blog); err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	publish(uc.Notifier, entities.ResourceBlog, entities.ActionCreated, blog.ID)
	return nil
}

// GetBlog retrieves a blog with its author resolved
func (uc *BlogUseCase) GetBlog(ctx context.Context, id uint) (*entities.Blog, error) {
	blog, err := uc.BlogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get blog %d: %w", id, err)
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

// GetAllBlogs retrieves all blogs. An empty store is reported as ErrBlogNotFound.
func (uc *BlogUseCase) GetAllBlogs(ctx context.Context) ([]entities.Blog, error) {
	blogs, err := uc.BlogRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	if len(blogs) == 0 {
		return nil, ErrBlogNotFound
	}
	return blogs, nil
}

// UpdateBlog replaces all fields of an existing blog
func (uc *BlogUseCase) UpdateBlog(ctx context.Context, blog *entities.Blog) error {
	existing, err := uc.BlogRepo.GetByID(ctx, blog.ID)
	if err != nil {
		return fmt.Errorf("get blog %d: %w", blog.ID, err)
	}
	if existing == nil {
		return ErrBlogNotFound
	}

	if err := uc.BlogRepo.Update(ctx, blog); err != nil {
		return fmt.Errorf("update blog %d: %w", blog.ID, err)
	}
	publish(uc.Notifier, entities.ResourceBlog, entities.ActionUpdated, blog.ID)
	return nil
}

// DeleteBlog deletes a blog
func (uc *BlogUseCase) DeleteBlog(ctx context.Context, id uint) error {
	existing, err := uc.BlogRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get blog %d: %w", id, err)
	}
	if existing == nil {
		return ErrBlogNotFound
	}

	if err := uc.BlogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete blog %d: %w", id, err)
	}
	publish(uc.Notifier, entities.ResourceBlog, entities.ActionDeleted, id)
	return nil
}
