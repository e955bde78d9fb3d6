package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// ErrEmailTaken is returned by CreateUser when another account already uses
// the email, compared case-insensitively.
var ErrEmailTaken = errors.New("email already registered")

type IUserRepository interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	// GetUserByID returns nil and no error when the id is unknown.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail matches case-insensitively and returns nil when absent.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// CreateUser fails with ErrEmailTaken when the email is in use.
	CreateUser(ctx context.Context, user *entity.User) error
	// UpsertUser replaces the user with the same id or appends it.
	UpsertUser(ctx context.Context, user *entity.User) error
	// SetUserActive fails with a NotFound error for unknown ids.
	SetUserActive(ctx context.Context, id string, isActive bool) error
	// DeleteUser removes a user by ID. Missing ids are not an error.
	DeleteUser(ctx context.Context, id string) error
}
