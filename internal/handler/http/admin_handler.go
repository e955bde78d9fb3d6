package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// AdminHandler serves categories, app settings and the dashboard.
type AdminHandler struct {
	adminUsecase usecasecontract.IAdminUseCase
}

func NewAdminHandler(adminUsecase usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.adminUsecase.FetchCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	categories, err := h.adminUsecase.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

func (h *AdminHandler) RemoveCategory(c *gin.Context) {
	categories, err := h.adminUsecase.RemoveCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// GetSettings is public; clients need the flags before signing in.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.adminUsecase.FetchSettings(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, settings)
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	settings, err := h.adminUsecase.UpdateSettings(c.Request.Context(), req.ToEntity())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, settings)
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUsecase.DashboardStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
