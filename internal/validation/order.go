package validation

import (
	"context"
	"fmt"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/model"
)

var (
	// OrderCreateFields are required on POST /orders.
	OrderCreateFields = []string{"deliverTo", "mobileNumber", "dishes"}

	// OrderUpdateFields are required on PUT /orders/:orderId.
	OrderUpdateFields = []string{"deliverTo", "mobileNumber", "dishes", "status"}
)

// DishesAreValid requires a non-empty dishes array whose every line has a
// positive integer quantity and, when given, a string dishId. It reports
// only the first bad line.
func DishesAreValid() chain.Stage[model.Order] {
	return chain.Step("dishesAreValid", func(ctx context.Context, st *chain.State[model.Order]) error {
		items, ok := st.Payload.Value("dishes").([]any)
		if !ok || len(items) == 0 {
			return errs.NewBadRequestError("Order must include at least one dish")
		}

		for i, item := range items {
			line, _ := item.(map[string]any)
			if validate.Var(line["quantity"], "required,posint") != nil {
				return errs.NewBadRequestError(fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", i))
			}
			if id, ok := line["dishId"]; ok && id != nil {
				if _, ok := id.(string); !ok {
					return errs.NewBadRequestError(fmt.Sprintf("Dish %d must have a dishId that is a string", i))
				}
			}
		}

		return nil
	})
}

// StatusIsKnown lets a new order omit status but rejects unknown values.
func StatusIsKnown() chain.Stage[model.Order] {
	return chain.Step("statusIsKnown", func(ctx context.Context, st *chain.State[model.Order]) error {
		value := st.Payload.Value("status")
		if !Present(value) {
			return nil
		}
		if s, ok := value.(string); ok {
			if _, ok := model.ParseOrderStatus(s); ok {
				return nil
			}
		}
		return errs.NewBadRequestError(StatusMessage)
	})
}

// StatusTransitionIsValid rejects any change to a delivered order, then
// any requested status outside the known set.
func StatusTransitionIsValid() chain.Stage[model.Order] {
	return chain.Step("statusIsValid", func(ctx context.Context, st *chain.State[model.Order]) error {
		order, ok := st.Record()
		if !ok {
			return errs.NewInternalServerError()
		}

		if order.Status == model.StatusDelivered {
			return errs.NewBadRequestError("A delivered order cannot be changed")
		}

		if s, ok := st.Payload.Value("status").(string); ok {
			if _, ok := model.ParseOrderStatus(s); ok {
				return nil
			}
		}
		return errs.NewBadRequestError(StatusMessage)
	})
}

// DeletionAllowed only lets pending orders be deleted.
func DeletionAllowed() chain.Stage[model.Order] {
	return chain.Step("isPending", func(ctx context.Context, st *chain.State[model.Order]) error {
		order, ok := st.Record()
		if !ok {
			return errs.NewInternalServerError()
		}
		if order.Status == model.StatusPending {
			return nil
		}
		return errs.NewBadRequestError("An order cannot be deleted unless it is pending")
	})
}
