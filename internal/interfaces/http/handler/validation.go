package handler

import (
	"github.com/ecom/backend/internal/domain/identity"
	"github.com/ecom/backend/internal/domain/order"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the domain enum checks on gin's binding
// engine so request structs can tag fields with them directly.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return order.PaymentMethod(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return order.Status(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return identity.Role(fl.Field().String()).IsValid()
	})
}
