package validation

import (
	"context"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/model"
)

// DishFields are the fields every create and update must carry.
var DishFields = []string{"name", "description", "price", "image_url"}

// PriceIsValid requires price to be an integer greater than 0.
func PriceIsValid() chain.Stage[model.Dish] {
	return chain.Step("priceIsValid", func(ctx context.Context, st *chain.State[model.Dish]) error {
		if validate.Var(st.Payload.Value("price"), "posint") == nil {
			return nil
		}
		return errs.NewBadRequestError("Dish must include a price that is an integer greater than 0")
	})
}
