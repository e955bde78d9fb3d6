package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// IAuthUseCase handles email sign-in and token lifecycle.
type IAuthUseCase interface {
	LoginUser(ctx context.Context, email string) (*entity.User, string, string, error)
	LoginWithOAuth(ctx context.Context, email, name string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	ProvisionAdmin(ctx context.Context, email, name string) (*entity.User, error)
}
