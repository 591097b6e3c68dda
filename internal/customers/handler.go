package customers

import (
	"net/http"

	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/gin-gonic/gin"
)

// Handler handles customer HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new customer handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers customer routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.AddCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
	}
}

// ListCustomers handles GET /customers
func (h *Handler) ListCustomers(c *gin.Context) {
	common.SuccessResponse(c, h.service.ListCustomers(c.Query("q")))
}

// AddCustomer handles POST /customers
func (h *Handler) AddCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	customer, err := h.service.AddCustomer(c.Request.Context(), &req)
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}

	common.SuccessResponseWithStatus(c, http.StatusCreated, customer, "customer added")
}

// GetCustomer handles GET /customers/:id
func (h *Handler) GetCustomer(c *gin.Context) {
	customer, err := h.service.GetCustomer(c.Param("id"))
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, customer)
}

// UpdateCustomer handles PUT /customers/:id
func (h *Handler) UpdateCustomer(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		common.AppErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, customer)
}
