package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/service"
	"github.com/deppfellow/grubdash/internal/validation"
)

// OrderParam is the route parameter naming an order.
const OrderParam = "orderId"

type OrderHandler struct {
	Handler

	list    *chain.Chain[model.Order]
	create  *chain.Chain[model.Order]
	read    *chain.Chain[model.Order]
	update  *chain.Chain[model.Order]
	destroy *chain.Chain[model.Order]
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),

		list: chain.New[model.Order]("orders.list").
			Handle(orders.List),

		create: chain.New("orders.create",
			validation.RequireFields[model.Order](validation.ResourceOrder, validation.OrderCreateFields...)...).
			Then(
				validation.DishesAreValid(),
				validation.StatusIsKnown(),
			).
			Handle(orders.Create),

		read: chain.New("orders.read", orders.Load()).
			Handle(orders.Read),

		update: chain.New("orders.update", orders.Load()).
			Then(validation.RequireFields[model.Order](validation.ResourceOrder, validation.OrderUpdateFields...)...).
			Then(
				validation.DishesAreValid(),
				validation.IDMatchesRoute[model.Order](validation.ResourceOrder),
				validation.StatusTransitionIsValid(),
			).
			Handle(orders.Update),

		destroy: chain.New("orders.delete", orders.Load()).
			Then(validation.DeletionAllowed()).
			Handle(orders.Destroy),
	}
}

func (h *OrderHandler) List() echo.HandlerFunc    { return Handle(h.Handler, h.list, "") }
func (h *OrderHandler) Create() echo.HandlerFunc  { return Handle(h.Handler, h.create, "") }
func (h *OrderHandler) Read() echo.HandlerFunc    { return Handle(h.Handler, h.read, OrderParam) }
func (h *OrderHandler) Update() echo.HandlerFunc  { return Handle(h.Handler, h.update, OrderParam) }
func (h *OrderHandler) Destroy() echo.HandlerFunc { return Handle(h.Handler, h.destroy, OrderParam) }
