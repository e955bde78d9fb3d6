package mocks

import (
	"context"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// MockAuthUsecase resolves tokens from the Users map; any other token is
// rejected as invalid.
type MockAuthUsecase struct {
	ShouldFailLogin        bool
	ShouldBanLogin         bool
	ShouldFailRefreshToken bool
	ShouldFailOAuth        bool

	Users            map[string]*entity.User
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string

	LastOAuthEmail string
	LastOAuthName  string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		Users: map[string]*entity.User{
			"user-token":  {ID: "u-1", Email: "user@example.com", Name: "User", Role: entity.UserRoleUser, IsActive: true},
			"admin-token": {ID: "u-admin", Email: "admin@example.com", Name: "Admin", Role: entity.UserRoleAdmin, IsActive: true},
		},
		MockUser:         entity.User{ID: "u-1", Email: "user@example.com", Name: "User", Role: entity.UserRoleUser, IsActive: true},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, email string) (*entity.User, string, string, error) {
	if m.ShouldBanLogin {
		return nil, "", "", apperror.AuthRejected(apperror.ReasonBanned, "account is banned")
	}
	if m.ShouldFailLogin {
		return nil, "", "", apperror.Validation("email", "invalid email")
	}
	u := m.MockUser
	u.Email = email
	return &u, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockAuthUsecase) LoginWithOAuth(ctx context.Context, email, name string) (*entity.User, string, string, error) {
	if m.ShouldFailOAuth {
		return nil, "", "", apperror.AuthRejected(apperror.ReasonRegistrationClosed, "registration closed")
	}
	m.LastOAuthEmail, m.LastOAuthName = email, name
	u := m.MockUser
	u.Email, u.Name = email, name
	return &u, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	u, ok := m.Users[accessToken]
	if !ok {
		return nil, apperror.AuthRejected(apperror.ReasonInvalidToken, "invalid token")
	}
	if !u.IsActive {
		return nil, apperror.AuthRejected(apperror.ReasonBanned, "account is banned")
	}
	return u, nil
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", apperror.AuthRejected(apperror.ReasonInvalidToken, "invalid refresh token")
	}
	return "new_access_token", "new_refresh_token", nil
}

func (m *MockAuthUsecase) ProvisionAdmin(ctx context.Context, email, name string) (*entity.User, error) {
	return &entity.User{ID: "u-admin", Email: email, Name: name, Role: entity.UserRoleAdmin, IsActive: true}, nil
}
