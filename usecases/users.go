package usecases

import (
	"context"
	"errors"
	"fmt"

	"blog-server/entities"
	"blog-server/hashing"
	"blog-server/repositories"

	"gorm.io/gorm"
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
	Hasher   hashing.Hasher
	Notifier Notifier
}

func NewUserUseCase(userRepo repositories.UserRepository, hasher hashing.Hasher, notifier Notifier) *UserUseCase {
	return &UserUseCase{
		UserRepo: userRepo,
		Hasher:   hasher,
		Notifier: notifier,
	}
}

// CreateUser hashes password into user.Password and stores the user.
func (uc *UserUseCase) CreateUser(ctx context.Context, user *entities.User, password string) error {
	if err := uc.ensureEmailFree(ctx, user.Email, 0); err != nil {
		return err
	}

	hash, err := uc.Hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.Password = hash
	if err := uc.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	publish(uc.Notifier, entities.ResourceUser, entities.ActionCreated, user.ID)
	return nil
}

// GetUser retrieves a user with their blogs
func (uc *UserUseCase) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetAllUsers retrieves all users. Unlike blogs, an empty store is not an error.
func (uc *UserUseCase) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	users, err := uc.UserRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser replaces name and email of an existing user
func (uc *UserUseCase) UpdateUser(ctx context.Context, user *entities.User) error {
	existing, err := uc.UserRepo.GetByID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("get user %d: %w", user.ID, err)
	}
	if existing == nil {
		return ErrUserNotFound
	}
	if err := uc.ensureEmailFree(ctx, user.Email, user.ID); err != nil {
		return err
	}

	if err := uc.UserRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	publish(uc.Notifier, entities.ResourceUser, entities.ActionUpdated, user.ID)
	return nil
}

// DeleteUser deletes a user. Their blogs are kept.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id uint) error {
	existing, err := uc.UserRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user %d: %w", id, err)
	}
	if existing == nil {
		return ErrUserNotFound
	}

	if err := uc.UserRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	publish(uc.Notifier, entities.ResourceUser, entities.ActionDeleted, id)
	return nil
}

// ensureEmailFree fails with ErrEmailTaken when another user (not selfID)
// already owns email. The unique index still guards concurrent writers.
func (uc *UserUseCase) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	owner, err := uc.UserRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup email: %w", err)
	}
	if owner != nil && owner.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}
