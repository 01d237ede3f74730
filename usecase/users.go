package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notemark/model"
	"notemark/repository"
	"notemark/services"

	"github.com/google/uuid"
)

type UserService struct {
	UsersRepo *repository.UsersRepo
}

// CreateUser registers a new user: assigns a uuid id, hashes the password,
// and inserts. Returns repository.ErrDuplicateUsername when the username is
// taken.
func (svc *UserService) CreateUser(ctx context.Context, user *model.User) error {
	if _, err := svc.UsersRepo.FindUserByUsername(ctx, user.Username); err == nil {
		return repository.ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.UserID = uuid.New().String()
	user.Password = hashed
	user.CreatedAt = time.Now()

	return svc.UsersRepo.AddUser(ctx, user)
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (svc *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser returns the user with the given id.
func (svc *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return svc.UsersRepo.FindUser(ctx, userID)
}
