package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/lib/utils"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
)

type DishService struct {
	server *server.Server
	dishes *repository.Collection[model.Dish]
	taken  func(id string) bool
}

func NewDishService(s *server.Server, repos *repository.Repositories) *DishService {
	return &DishService{
		server: s,
		dishes: repos.Dishes,
		taken:  repos.IDTaken,
	}
}

func dishNotFound(id string) error {
	return errs.NewNotFoundError(fmt.Sprintf("Dish does not exist: %s", id))
}

// decodeDish builds a dish from validated payload fields. The body id is
// never copied; the caller assigns it.
func decodeDish(p chain.Payload) (model.Dish, error) {
	var dish model.Dish
	if err := p.Omit("id").Decode(&dish); err != nil {
		return model.Dish{}, errs.NewBadRequestError("Dish data has a field of the wrong type")
	}
	return dish, nil
}

// Load attaches the dish named by the route id, or fails with 404.
func (d *DishService) Load() chain.Stage[model.Dish] {
	return chain.Step("dishExists", func(ctx context.Context, st *chain.State[model.Dish]) error {
		dish, ok := d.dishes.FindByID(st.RouteID)
		if !ok {
			return dishNotFound(st.RouteID)
		}
		st.Attach(dish)
		return nil
	})
}

func (d *DishService) List(ctx context.Context, st *chain.State[model.Dish]) (chain.Result, error) {
	return chain.OK(d.dishes.List()), nil
}

func (d *DishService) Create(ctx context.Context, st *chain.State[model.Dish]) (chain.Result, error) {
	dish, err := decodeDish(st.Payload)
	if err != nil {
		return chain.Result{}, err
	}
	dish.ID = utils.NextID(d.taken)

	d.dishes.Append(dish)

	zerolog.Ctx(ctx).Info().Str("dish_id", dish.ID).Msg("dish created")

	return chain.Created(dish), nil
}

func (d *DishService) Read(ctx context.Context, st *chain.State[model.Dish]) (chain.Result, error) {
	dish, ok := st.Record()
	if !ok {
		return chain.Result{}, errs.NewInternalServerError()
	}
	return chain.OK(dish), nil
}

// Update replaces every mutable field of the loaded dish. The id never changes.
func (d *DishService) Update(ctx context.Context, st *chain.State[model.Dish]) (chain.Result, error) {
	current, ok := st.Record()
	if !ok {
		return chain.Result{}, errs.NewInternalServerError()
	}

	dish, err := decodeDish(st.Payload)
	if err != nil {
		return chain.Result{}, err
	}
	dish.ID = current.ID

	if !d.dishes.Update(dish) {
		return chain.Result{}, dishNotFound(current.ID)
	}

	zerolog.Ctx(ctx).Info().Str("dish_id", dish.ID).Msg("dish updated")

	return chain.OK(dish), nil
}
