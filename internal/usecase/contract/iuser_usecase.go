package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	FetchUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateUserStatus(ctx context.Context, userID string, isActive bool) error
	DeleteUser(ctx context.Context, userID string) error
	UpdateUserProfile(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
}
