package service

import (
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
)

type Services struct {
	Dish  *DishService
	Order *OrderService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Dish:  NewDishService(s, repos),
		Order: NewOrderService(s, repos),
	}
}
