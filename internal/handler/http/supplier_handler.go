package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

type SupplierHandler struct {
	supplierUsecase usecasecontract.ISupplierUseCase
}

func NewSupplierHandler(supplierUsecase usecasecontract.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{supplierUsecase: supplierUsecase}
}

// ListSuppliers serves the filtered, sorted directory.
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	var q dto.SupplierQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: apperror.KindValidation.String()})
		return
	}
	list, err := h.supplierUsecase.SearchSuppliers(c.Request.Context(), q.ToFilterState())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewSupplierListResponse(list))
}

func (h *SupplierHandler) SuggestSuppliers(c *gin.Context) {
	list, err := h.supplierUsecase.SuggestSuppliers(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewSupplierListResponse(list))
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id := c.Param("id")
	supplier, err := h.supplierUsecase.FetchSupplierByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	if supplier == nil {
		HandleError(c, apperror.NotFound("supplier", id))
		return
	}
	SuccessHandler(c, http.StatusOK, supplier)
}

// SaveSupplier is the admin upsert. A body without id creates a listing.
func (h *SupplierHandler) SaveSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	created := req.ID == ""
	saved, err := h.supplierUsecase.SaveSupplier(c.Request.Context(), &req.Supplier, req.MapURL)
	if err != nil {
		HandleError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	SuccessHandler(c, status, saved)
}

// ProposeSupplier lets signed-in users submit a new unverified listing.
func (h *SupplierHandler) ProposeSupplier(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.SupplierRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	saved, err := h.supplierUsecase.ProposeSupplier(c.Request.Context(), user, &req.Supplier, req.MapURL)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, saved)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	if err := h.supplierUsecase.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SupplierHandler) SubmitReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.ReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	updated, err := h.supplierUsecase.SubmitReview(c.Request.Context(), c.Param("id"), user, req.Rating, req.Comment)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, updated)
}
