package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

type LocationHandler struct {
	locationUsecase usecasecontract.ILocationUseCase
}

func NewLocationHandler(locationUsecase usecasecontract.ILocationUseCase) *LocationHandler {
	return &LocationHandler{locationUsecase: locationUsecase}
}

func (h *LocationHandler) ListCities(c *gin.Context) {
	cities, err := h.locationUsecase.FetchCities(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CitiesResponse{Cities: cities})
}

// ResolveRegion echoes region back only if it belongs to city, so a client
// switching cities knows to clear a stale selection.
func (h *LocationHandler) ResolveRegion(c *gin.Context) {
	city := c.Query("city")
	region, err := h.locationUsecase.ResolveRegion(c.Request.Context(), city, c.Query("region"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ResolveRegionResponse{City: city, Region: region})
}

func (h *LocationHandler) ParseMapURL(c *gin.Context) {
	var req dto.MapParseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	point, err := h.locationUsecase.ParseMapURL(req.URL)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, point)
}

func (h *LocationHandler) AddCity(c *gin.Context) {
	var req dto.CityRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	added, err := h.locationUsecase.RegisterCity(c.Request.Context(), req.City)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, addedStatus(added), dto.AddedResponse{Added: added})
}

func (h *LocationHandler) AddRegion(c *gin.Context) {
	var req dto.RegionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	added, err := h.locationUsecase.RegisterRegion(c.Request.Context(), c.Param("city"), req.Region)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, addedStatus(added), dto.AddedResponse{Added: added})
}

func addedStatus(added bool) int {
	if added {
		return http.StatusCreated
	}
	return http.StatusOK
}
