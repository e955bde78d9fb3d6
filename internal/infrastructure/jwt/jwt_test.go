package jwt

import (
	"testing"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Minute, time.Hour))

	token, err := svc.GenerateAccessToken("u1", entity.UserRoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, entity.UserRoleAdmin, claims.Role)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Minute, time.Hour))

	access, err := svc.GenerateAccessToken("u1", entity.UserRoleUser)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken("u1", entity.UserRoleUser)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
	_, err = svc.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	claims, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestExpiredAndForeignTokensRejected(t *testing.T) {
	mgr := NewJWTManager("secret", time.Minute, time.Hour)
	mgr.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	expired, err := mgr.GenerateAccessToken("u1", "user")
	require.NoError(t, err)

	mgr.now = time.Now
	_, err = mgr.VerifyToken(expired)
	assert.Error(t, err)

	other := NewJWTManager("another-secret", time.Minute, time.Hour)
	foreign, err := other.GenerateAccessToken("u1", "user")
	require.NoError(t, err)
	_, err = mgr.VerifyToken(foreign)
	assert.Error(t, err)
}

func TestRefreshTokenOmitsRole(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Minute, time.Hour))

	first, err := svc.GenerateRefreshToken("u1", entity.UserRoleAdmin)
	require.NoError(t, err)
	second, err := svc.GenerateRefreshToken("u1", entity.UserRoleAdmin)
	require.NoError(t, err)

	a, err := svc.ParseRefreshToken(first)
	require.NoError(t, err)
	b, err := svc.ParseRefreshToken(second)
	require.NoError(t, err)
	assert.Empty(t, a.Role)
	assert.NotEqual(t, a.ID, b.ID)
}
