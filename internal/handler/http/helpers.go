package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: apperror.KindValidation.String()})
		return err
	}
	return nil
}

// HandleError maps use case errors onto HTTP statuses.
func HandleError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	if appErr, ok := apperror.As(err); ok {
		body := dto.ErrorResponse{Error: appErr.Error(), Code: appErr.Kind.String(), Field: appErr.Field}
		switch appErr.Kind {
		case apperror.KindNotFound:
			return http.StatusNotFound, body
		case apperror.KindValidation:
			return http.StatusBadRequest, body
		case apperror.KindAuthRejected:
			body.Code = appErr.Reason
			return authRejectedStatus(appErr.Reason), body
		}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.ErrorResponse{Error: "request timed out"}
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, dto.ErrorResponse{Error: "request cancelled"}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
}

func authRejectedStatus(reason string) int {
	switch reason {
	case apperror.ReasonInvalidToken:
		return http.StatusUnauthorized
	case apperror.ReasonMaintenance:
		return http.StatusServiceUnavailable
	}
	return http.StatusForbidden
}

// currentUser returns the user the auth middleware attached to the request.
func currentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}
