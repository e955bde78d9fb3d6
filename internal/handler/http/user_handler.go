package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	GetCurrentUser(*gin.Context)
	UpdateCurrentUser(*gin.Context)
	ListUsers(*gin.Context)
	GetUser(*gin.Context)
	UpdateUser(*gin.Context)
	UpdateUserStatus(*gin.Context)
	DeleteUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// GetCurrentUser handles retrieving current user information
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateCurrentUser applies the caller's own profile edits
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), user.ID, req.ToUpdates())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updated))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.FetchUsers(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateUser replaces a whole account record; unknown ids are created.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	saved, err := h.userUsecase.UpdateUserProfile(c.Request.Context(), req.ToEntity(c.Param("id")))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*saved))
}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.userUsecase.UpdateUserStatus(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User status updated")
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
