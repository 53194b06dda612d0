package handler

import (
	appOrder "github.com/ecom/backend/internal/application/order"
	appPayment "github.com/ecom/backend/internal/application/payment"
	"github.com/ecom/backend/internal/domain/payment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment gateway endpoints
type PaymentHandler struct {
	BaseHandler
	payments *appPayment.Service
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments *appPayment.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// initiateRequest carries the order to pay
type initiateRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

// Initiate handles POST /payments
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req initiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid payment payload")
		return
	}

	initiation, err := h.payments.Initiate(c.Request.Context(), req.OrderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, initiation)
}

// Callback handles POST /payments/callback, the gateway's IPN report
func (h *PaymentHandler) Callback(c *gin.Context) {
	var result payment.Result
	if err := c.ShouldBindJSON(&result); err != nil {
		h.BadRequest(c, "invalid callback payload")
		return
	}

	o, err := h.payments.HandleCallback(c.Request.Context(), result)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, appOrder.ToOrderResponse(o))
}
