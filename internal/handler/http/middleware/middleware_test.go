package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth map[string]*entity.User

func (s stubAuth) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if u, ok := s[token]; ok {
		return u, nil
	}
	return nil, apperror.AuthRejected(apperror.ReasonInvalidToken, "invalid token")
}

type stubSettings struct {
	settings entity.AppSettings
}

func (s stubSettings) FetchSettings(ctx context.Context) (entity.AppSettings, error) {
	return s.settings, nil
}

var users = stubAuth{
	"u": {ID: "u-1", Role: entity.UserRoleUser, IsActive: true},
	"a": {ID: "u-2", Role: entity.UserRoleAdmin, IsActive: true},
}

func serve(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleWare(t *testing.T) {
	r := gin.New()
	r.GET("/p", middleware.AuthMiddleWare(users), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextUserIDKey))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic u", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer u", http.StatusOK},
		{"lowercase scheme", "bearer u", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(r, "/p", tc.header)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "u-1", w.Body.String())
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	r := gin.New()
	r.GET("/admin", middleware.AuthMiddleWare(users), middleware.AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusForbidden, serve(r, "/admin", "Bearer u").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/admin", "Bearer a").Code)
}

func TestMaintenanceGuard(t *testing.T) {
	r := gin.New()
	r.Use(middleware.MaintenanceGuard(stubSettings{entity.AppSettings{MaintenanceMode: true}}, users, "/open"))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/open/login", ok)
	r.GET("/closed", ok)

	assert.Equal(t, http.StatusOK, serve(r, "/open/login", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, "/closed", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, "/closed", "Bearer u").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/closed", "Bearer a").Code)
}

func TestMaintenanceGuard_Off(t *testing.T) {
	r := gin.New()
	r.Use(middleware.MaintenanceGuard(stubSettings{entity.DefaultSettings()}, users))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, "/x", "").Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))

	w = serve(r, "/x", "")
	assert.NotEmpty(t, w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(r, "/ok", "")
	serve(r, "/boom", "")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		assert.Equal(t, zap.ErrorLevel, entries[1].Level)
		assert.Equal(t, "/boom", entries[1].ContextMap()["path"])
		assert.EqualValues(t, 500, entries[1].ContextMap()["status"])
	}
}
