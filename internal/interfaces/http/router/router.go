// Package router wires the HTTP handlers onto a gin engine under the
// versioned API prefix.
package router

import (
	"github.com/ecom/backend/internal/infrastructure/logger"
	"github.com/ecom/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	System     *handler.SystemHandler
	Categories *handler.CategoryHandler
	Products   *handler.ProductHandler
	Users      *handler.UserHandler
	Locations  *handler.LocationHandler
	Carts      *handler.CartHandler
	Orders     *handler.OrderHandler
	Imports    *handler.ImportHandler
	Payments   *handler.PaymentHandler
}

// New builds the gin engine with logging and recovery middleware and all
// routes mounted under /api/v1.
func New(log *zap.Logger, h Handlers) *gin.Engine {
	handler.RegisterValidations()

	engine := gin.New()
	engine.Use(
		logger.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	api := engine.Group("/api/v1")

	api.GET("/system/info", h.System.Info)
	api.GET("/system/health", h.System.Health)

	crud := func(prefix string, list, create, get, update, remove gin.HandlerFunc) {
		group := api.Group(prefix)
		group.GET("", list)
		group.POST("", create)
		group.GET("/:id", get)
		group.PATCH("/:id", update)
		group.DELETE("/:id", remove)
	}

	crud("/categories", h.Categories.List, h.Categories.Create, h.Categories.Get, h.Categories.Update, h.Categories.Delete)
	crud("/products", h.Products.List, h.Products.Create, h.Products.Get, h.Products.Update, h.Products.Delete)
	crud("/users", h.Users.List, h.Users.Create, h.Users.Get, h.Users.Update, h.Users.Delete)
	crud("/locations", h.Locations.List, h.Locations.Create, h.Locations.Get, h.Locations.Update, h.Locations.Delete)
	crud("/carts", h.Carts.List, h.Carts.Create, h.Carts.Get, h.Carts.Update, h.Carts.Delete)

	orders := api.Group("/orders")
	orders.POST("", h.Orders.Create)
	orders.GET("/management", h.Orders.List)
	orders.GET("/:id", h.Orders.Get)
	orders.PATCH("/:id", h.Orders.Update)

	imports := api.Group("/imports")
	imports.POST("", h.Imports.Create)
	imports.GET("/:id", h.Imports.Get)
	imports.PUT("/:id", h.Imports.Update)

	payments := api.Group("/payments")
	payments.POST("", h.Payments.Initiate)
	payments.POST("/callback", h.Payments.Callback)

	return engine
}
