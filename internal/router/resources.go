package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/grubdash/internal/handler"
)

// registerResourceRoutes maps the dish and order operations. Any other
// method on these paths is answered with 405 by Echo.
func registerResourceRoutes(r *echo.Echo, h *handler.Handlers) {
	dishes := r.Group("/dishes")
	dishes.GET("", h.Dish.List())
	dishes.POST("", h.Dish.Create())
	dishes.GET("/:"+handler.DishParam, h.Dish.Read())
	dishes.PUT("/:"+handler.DishParam, h.Dish.Update())

	orders := r.Group("/orders")
	orders.GET("", h.Order.List())
	orders.POST("", h.Order.Create())
	orders.GET("/:"+handler.OrderParam, h.Order.Read())
	orders.PUT("/:"+handler.OrderParam, h.Order.Update())
	orders.DELETE("/:"+handler.OrderParam, h.Order.Destroy())
}
