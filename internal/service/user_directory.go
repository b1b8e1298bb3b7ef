package service

import (
	"context"
	"errors"
	"fmt"

	"delivery-api/internal/credential"
	"delivery-api/internal/model"
)

// UserStore is the persistence collaborator of UserDirectory. FindByUsername
// returns model.ErrUserNotFound on a miss and Create returns
// model.ErrUserAlreadyExists on a username collision.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
}

type UserDirectory struct {
	store UserStore
}

func NewUserDirectory(store UserStore) *UserDirectory {
	return &UserDirectory{store: store}
}

// GetUser looks a user up by exact, case-sensitive username. A missing user
// is reported through found, not through err.
func (d *UserDirectory) GetUser(ctx context.Context, username string) (model.User, bool, error) {
	user, err := d.store.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("get user: %w", err)
	}

	return user, true, nil
}

// CreateUser stores a new user with a fresh salt. Length and uniqueness checks
// belong to the caller; a duplicate that slips through surfaces as
// model.ErrUserAlreadyExists.
func (d *UserDirectory) CreateUser(ctx context.Context, username string, password string) error {
	salt, err := credential.GenerateSalt()
	if err != nil {
		return err
	}

	_, err = d.store.Create(ctx, model.User{
		Username:     username,
		Salt:         salt,
		PasswordHash: credential.HashPassword(password, salt),
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}
