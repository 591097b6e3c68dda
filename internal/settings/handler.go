package settings

import (
	"net/http"

	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/gin-gonic/gin"
)

// Handler handles settings HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new settings handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers settings routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/settings", h.GetSettings)
	router.PUT("/settings", h.UpdateSettings)
}

// GetSettings handles GET /settings
func (h *Handler) GetSettings(c *gin.Context) {
	common.SuccessResponse(c, h.service.GetSettings())
}

// UpdateSettings handles PUT /settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, updated)
}
