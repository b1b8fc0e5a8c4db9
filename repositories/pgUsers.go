package repositories

import (
	"context"
	"errors"

	"blog-server/db"
	"blog-server/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.Session(ctx).Omit("Blogs").Create(user).Error
}

func (r *userPgRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := r.withBlogs(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Session(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	err := r.withBlogs(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

// Update replaces name and email. The password and the blogs relation are
// left untouched.
func (r *userPgRepository) Update(ctx context.Context, user *entities.User) error {
	return r.db.Session(ctx).Model(&entities.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":  user.Name,
			"email": user.Email,
		}).Error
}

func (r *userPgRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Session(ctx).Where("id = ?", id).Delete(&entities.User{}).Error
}

func (r *userPgRepository) withBlogs(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx).Preload("Blogs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	})
}
