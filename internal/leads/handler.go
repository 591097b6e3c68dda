package leads

import (
	"bytes"
	"net/http"

	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/gin-gonic/gin"
)

// Handler handles lead HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new leads handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers lead routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	leads := router.Group("/leads")
	{
		leads.GET("", h.ListLeads)
		leads.GET("/export", h.ExportCSV)
	}
}

// ListLeads handles GET /leads
func (h *Handler) ListLeads(c *gin.Context) {
	common.SuccessResponse(c, h.service.Leads())
}

// ExportCSV handles GET /leads/export
func (h *Handler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.WriteCSV(&buf); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to export leads")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
