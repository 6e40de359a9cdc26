package handler

import (
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health *HealthHandler
	Dish   *DishHandler
	Order  *OrderHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s, repos),
		Dish:   NewDishHandler(s, services.Dish),
		Order:  NewOrderHandler(s, services.Order),
	}
}
