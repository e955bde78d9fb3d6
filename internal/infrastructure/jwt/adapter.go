package jwt

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/usecase"
)

// tokenService issues the session pair handed out on login.
//
// Access tokens carry the role so middleware can gate admin routes without a
// store lookup. Refresh tokens carry only the user id and a random jti: the
// auth use case reloads the account on refresh, so a ban or a role change
// takes effect at the next rotation instead of surviving until expiry.
type tokenService struct {
	mgr *JWTManager
}

func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &tokenService{mgr: mgr}
}

func (s *tokenService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return s.mgr.GenerateAccessToken(userID, string(role))
}

// GenerateRefreshToken ignores role; see tokenService.
func (s *tokenService) GenerateRefreshToken(userID string, _ entity.UserRole) (string, error) {
	return s.mgr.GenerateRefreshToken(uuid.NewString(), userID)
}

func (s *tokenService) ParseAccessToken(token string) (*entity.Claims, error) {
	return toSession(s.mgr.VerifyToken(token))
}

// ParseRefreshToken returns claims with an empty Role. Callers must resolve
// the current role from the user record.
func (s *tokenService) ParseRefreshToken(token string) (*entity.Claims, error) {
	return toSession(s.mgr.VerifyRefreshToken(token))
}

func toSession(c *CustomClaims, err error) (*entity.Claims, error) {
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           c.Subject,
		Role:             entity.UserRole(c.Role),
		RegisteredClaims: c.RegisteredClaims,
	}, nil
}
