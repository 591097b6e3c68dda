package fleet

import (
	"net/http"

	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/gin-gonic/gin"
)

// Handler handles fleet HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new fleet handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers fleet routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.POST("", h.AddVehicle)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
	}
}

// ListVehicles handles GET /vehicles
func (h *Handler) ListVehicles(c *gin.Context) {
	common.SuccessResponse(c, h.service.ListVehicles(c.Query("q")))
}

// AddVehicle handles POST /vehicles
func (h *Handler) AddVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	vehicle, err := h.service.AddVehicle(c.Request.Context(), &req)
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}

	common.SuccessResponseWithStatus(c, http.StatusCreated, vehicle, "vehicle added")
}

// GetVehicle handles GET /vehicles/:id
func (h *Handler) GetVehicle(c *gin.Context) {
	view, err := h.service.GetVehicle(c.Param("id"))
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, view)
}

// UpdateVehicle handles PUT /vehicles/:id
func (h *Handler) UpdateVehicle(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	vehicle, err := h.service.UpdateVehicle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, vehicle)
}
