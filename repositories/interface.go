package repositories

import (
	"context"

	"blog-server/entities"
)

// Lookups return (nil, nil) when the row does not exist; callers decide what
// a missing row means.

type BlogRepository interface {
	Create(ctx context.Context, blog *entities.Blog) error
	GetByID(ctx context.Context, id uint) (*entities.Blog, error)
	GetAll(ctx context.Context) ([]entities.Blog, error)
	Update(ctx context.Context, blog *entities.Blog) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uint) error
}
