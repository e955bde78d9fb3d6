package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "new@example.com"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.LoginResponse](t, w)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, "mock_access_token", resp.AccessToken)
	assert.Equal(t, "mock_refresh_token", resp.RefreshToken)
}

func TestLogin_MissingEmail(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Banned(t *testing.T) {
	s := newTestServer(t)
	s.auth.ShouldBanLogin = true
	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "banned@example.com"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "banned", decode[dto.ErrorResponse](t, w).Code)
}

func TestLogin_InvalidEmail(t *testing.T) {
	s := newTestServer(t)
	s.auth.ShouldFailLogin = true
	w := s.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email", decode[dto.ErrorResponse](t, w).Field)
}

func TestRefreshToken(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/v1/auth/refresh-token", "", dto.RefreshTokenRequest{RefreshToken: "r"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new_access_token", decode[dto.TokenResponse](t, w).AccessToken)

	s.auth.ShouldFailRefreshToken = true
	w = s.do(t, http.MethodPost, "/api/v1/auth/refresh-token", "", dto.RefreshTokenRequest{RefreshToken: "r"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleLogin_NotConfigured(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/v1/auth/google/login", "", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestGoogleLogin_RedirectsWithState(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.GoogleClientID = "client-id"
		c.GoogleClientSecret = "secret"
	})
	w := s.do(t, http.MethodGet, "/api/v1/auth/google/login", "", nil)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "accounts.google.com")
	assert.Contains(t, location, "client_id=client-id")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "oauthState", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.Contains(t, location, "state="+cookies[0].Value)
}

func TestGoogleCallback_StateMismatch(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=other&code=c", nil)
	req.AddCookie(&http.Cookie{Name: "oauthState", Value: "expected"})
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleCallback_MissingCode(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=same", nil)
	req.AddCookie(&http.Cookie{Name: "oauthState", Value: "same"})
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
