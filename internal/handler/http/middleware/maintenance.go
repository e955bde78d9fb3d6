package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

const msgMaintenance = "الموقع في وضع الصيانة حالياً. يرجى المحاولة لاحقاً."

// SettingsSource reads the current app settings.
type SettingsSource interface {
	FetchSettings(ctx context.Context) (entity.AppSettings, error)
}

// MaintenanceGuard answers 503 to everyone except admins while maintenance
// mode is on. Paths under any of the exempt prefixes always pass, so admins
// can still sign in and turn maintenance off.
func MaintenanceGuard(settings SettingsSource, auth Authenticator, exempt ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range exempt {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		s, err := settings.FetchSettings(c.Request.Context())
		if err != nil {
			abortWith(c, err)
			return
		}
		if !s.MaintenanceMode {
			c.Next()
			return
		}

		if token, ok := bearerToken(c); ok {
			if user, err := auth.Authenticate(c.Request.Context(), token); err == nil && user.Role == entity.UserRoleAdmin {
				c.Next()
				return
			}
		}
		abortWith(c, apperror.AuthRejected(apperror.ReasonMaintenance, msgMaintenance))
	}
}
