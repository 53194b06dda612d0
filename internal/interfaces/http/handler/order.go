package handler

import (
	"strings"

	appOrder "github.com/ecom/backend/internal/application/order"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order transaction and management endpoints
type OrderHandler struct {
	BaseHandler
	orders     *appOrder.Service
	management *appOrder.ManagementService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *appOrder.Service, management *appOrder.ManagementService) *OrderHandler {
	return &OrderHandler{orders: orders, management: management}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req appOrder.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid order payload")
		return
	}

	o, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, appOrder.ToOrderResponse(o))
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	o, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, appOrder.ToOrderResponse(o))
}

// Update handles PATCH /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req appOrder.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid order payload")
		return
	}

	o, err := h.orders.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, appOrder.ToOrderResponse(o))
}

// managementQuery is the query shape of the administrative listing. The
// status sets arrive as comma-separated lists.
type managementQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status        string `form:"status"`
	Included      string `form:"included_statuses"`
	Excluded      string `form:"excluded_statuses"`
	PaymentStatus string `form:"payment_status"`
}

// List handles GET /orders/management
func (h *OrderHandler) List(c *gin.Context) {
	var q managementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "invalid filter parameters")
		return
	}

	req := appOrder.ManagementListRequest{
		Page:             q.Page,
		PageSize:         q.PageSize,
		IncludedStatuses: parseStatusList(q.Included),
		ExcludedStatuses: parseStatusList(q.Excluded),
	}
	if q.Status != "" {
		status := order.Status(q.Status)
		if !status.IsValid() {
			h.BadRequest(c, "unknown order status")
			return
		}
		req.Status = &status
	}
	if q.PaymentStatus != "" {
		ps := order.ParsePaymentStatus(q.PaymentStatus)
		req.PaymentStatus = &ps
	}

	result, err := h.management.List(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, result)
}

func parseStatusList(raw string) []order.Status {
	if raw == "" {
		return nil
	}
	var statuses []order.Status
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		statuses = append(statuses, order.Status(part))
	}
	return statuses
}
