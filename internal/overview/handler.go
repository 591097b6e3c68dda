package overview

import (
	"time"

	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/gin-gonic/gin"
)

// Handler handles overview HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new overview handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers overview routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/overview", h.GetOverview)
}

// GetOverview handles GET /overview
func (h *Handler) GetOverview(c *gin.Context) {
	common.SuccessResponse(c, h.service.Summarize(time.Now()))
}
