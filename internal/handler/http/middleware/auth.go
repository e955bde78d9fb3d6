package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
)

// Context keys set by AuthMiddleWare.
const (
	ContextUserIDKey = "userID"
	ContextUserKey   = "user"
	ContextRoleKey   = "userRole"
)

// Authenticator resolves a bearer token to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

// AuthMiddleWare rejects requests without a valid bearer token for an active
// account.
func AuthMiddleWare(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortWith(c, apperror.AuthRejected(apperror.ReasonInvalidToken, "authorization header required"))
			return
		}
		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortWith(c, err)
			return
		}
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Set(ContextRoleKey, user.Role)
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleWare.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRoleKey)
		if role != entity.UserRoleAdmin {
			abortWith(c, apperror.AuthRejected(apperror.ReasonForbidden, "admin access required"))
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func abortWith(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok || appErr.Kind != apperror.KindAuthRejected {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	status := http.StatusForbidden
	switch appErr.Reason {
	case apperror.ReasonInvalidToken:
		status = http.StatusUnauthorized
	case apperror.ReasonMaintenance:
		status = http.StatusServiceUnavailable
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: appErr.Error(), Code: appErr.Reason})
}
