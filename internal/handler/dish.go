package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/service"
	"github.com/deppfellow/grubdash/internal/validation"
)

// DishParam is the route parameter naming a dish.
const DishParam = "dishId"

type DishHandler struct {
	Handler

	list   *chain.Chain[model.Dish]
	create *chain.Chain[model.Dish]
	read   *chain.Chain[model.Dish]
	update *chain.Chain[model.Dish]
}

func NewDishHandler(s *server.Server, dishes *service.DishService) *DishHandler {
	required := func() []chain.Stage[model.Dish] {
		return validation.RequireFields[model.Dish](validation.ResourceDish, validation.DishFields...)
	}

	return &DishHandler{
		Handler: NewHandler(s),

		list: chain.New[model.Dish]("dishes.list").
			Handle(dishes.List),

		create: chain.New("dishes.create", required()...).
			Then(validation.PriceIsValid()).
			Handle(dishes.Create),

		read: chain.New("dishes.read", dishes.Load()).
			Handle(dishes.Read),

		update: chain.New("dishes.update", dishes.Load()).
			Then(required()...).
			Then(
				validation.PriceIsValid(),
				validation.IDMatchesRoute[model.Dish](validation.ResourceDish),
			).
			Handle(dishes.Update),
	}
}

func (h *DishHandler) List() echo.HandlerFunc   { return Handle(h.Handler, h.list, "") }
func (h *DishHandler) Create() echo.HandlerFunc { return Handle(h.Handler, h.create, "") }
func (h *DishHandler) Read() echo.HandlerFunc   { return Handle(h.Handler, h.read, DishParam) }
func (h *DishHandler) Update() echo.HandlerFunc { return Handle(h.Handler, h.update, DishParam) }
