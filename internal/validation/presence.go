package validation

import (
	"context"
	"fmt"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/model"
)

// StatusMessage is returned whenever an order status is missing or unknown.
var StatusMessage = "Order must have a status of " + model.StatusList()

func missingFieldMessage(resource, field string) string {
	if resource == ResourceOrder {
		switch field {
		case "dishes":
			return "Order must include a dish"
		case "status":
			return StatusMessage
		}
	}
	return fmt.Sprintf("%s must include a %s", resource, field)
}

// textFields only count as present when they hold a string.
var textFields = map[string]bool{
	"name":         true,
	"description":  true,
	"image_url":    true,
	"deliverTo":    true,
	"mobileNumber": true,
	"status":       true,
}

// RequirePresent fails the chain when field is missing from the payload,
// or when a text field holds anything but a string.
func RequirePresent[T any](resource, field string) chain.Stage[T] {
	message := missingFieldMessage(resource, field)
	text := textFields[field]

	return chain.Step("bodyDataHas:"+field, func(ctx context.Context, st *chain.State[T]) error {
		value := st.Payload.Value(field)
		if !Present(value) {
			return errs.NewBadRequestError(message)
		}
		if _, ok := value.(string); text && !ok {
			return errs.NewBadRequestError(message)
		}
		return nil
	})
}

// RequireFields returns one presence stage per field, in the given order.
func RequireFields[T any](resource string, fields ...string) []chain.Stage[T] {
	stages := make([]chain.Stage[T], len(fields))
	for i, field := range fields {
		stages[i] = RequirePresent[T](resource, field)
	}
	return stages
}
