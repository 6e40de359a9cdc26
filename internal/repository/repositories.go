package repository

import (
	"fmt"

	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Dishes *Collection[model.Dish]
	Orders *Collection[model.Order]
}

// NewRepositories constructs the collections, seeding them from the
// embedded fixtures when store.seed_fixtures is enabled.
func NewRepositories(s *server.Server) (*Repositories, error) {
	repos := &Repositories{
		Dishes: NewCollection[model.Dish](),
		Orders: NewCollection[model.Order](),
	}

	if !s.Config.Store.SeedFixtures {
		return repos, nil
	}

	dishes, orders, err := LoadFixtures()
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	repos.Dishes = NewCollection(dishes...)
	repos.Orders = NewCollection(orders...)

	s.Logger.Info().
		Int("dishes", len(dishes)).
		Int("orders", len(orders)).
		Msg("seeded collections from fixtures")

	return repos, nil
}

// IDTaken reports whether id is used by any dish or order.
func (r *Repositories) IDTaken(id string) bool {
	return r.Dishes.Contains(id) || r.Orders.Contains(id)
}
