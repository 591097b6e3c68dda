package booking

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/carxpresspanabo/carxpress-rental/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers booking routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	b := rg.Group("/bookings")
	{
		b.GET("", h.ListBookings)
		b.POST("", h.CreateBooking)
		b.POST("/quote", h.GetQuote)
		b.GET("/export", h.ExportCSV)
		b.GET("/:id", h.GetBooking)
		b.POST("/:id/advance", h.AdvanceBooking)
		b.POST("/:id/cancel", h.CancelBooking)
		b.GET("/:id/receipt", h.GetReceipt)
	}
}

// ListBookings lists bookings with filters and pagination
func (h *Handler) ListBookings(c *gin.Context) {
	params := pagination.ParseParams(c)
	filters := ListFilters{
		Query:     c.Query("q"),
		VehicleID: c.Query("vehicle_id"),
		Status:    c.Query("status"),
	}

	items, total := h.service.ListBookings(filters, params.Limit, params.Offset)
	meta := pagination.BuildMeta(params.Limit, params.Offset, total)
	common.SuccessResponseWithMeta(c, items, meta)
}

// CreateBooking creates a new booking
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}

	common.SuccessResponseWithStatus(c, http.StatusCreated, b, "Booking created successfully")
}

// GetQuote prices a proposed booking without creating it
func (h *Handler) GetQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.service.GetQuote(&req)
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, quote)
}

// GetBooking retrieves a booking by ID
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Param("id"))
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, b)
}

// AdvanceBooking advances a booking to its next status
func (h *Handler) AdvanceBooking(c *gin.Context) {
	b, err := h.service.AdvanceBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}
	common.SuccessResponseWithStatus(c, http.StatusOK, b, "Booking advanced")
}

// CancelBooking cancels an active booking
func (h *Handler) CancelBooking(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}
	common.SuccessResponseWithStatus(c, http.StatusOK, b, "Booking cancelled")
}

// ExportCSV streams all bookings as a CSV download
func (h *Handler) ExportCSV(c *gin.Context) {
	filename := fmt.Sprintf("bookings_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.WriteCSV(c.Writer); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to export bookings")
	}
}

// GetReceipt renders a printable HTML receipt for a booking
func (h *Handler) GetReceipt(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.WriteReceipt(&buf, c.Param("id")); err != nil {
		common.AppErrorResponse(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
