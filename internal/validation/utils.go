package validation

import (
	"encoding/json"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/grubdash/internal/chain"
	"github.com/deppfellow/grubdash/internal/errs"
)

const (
	// ResourceDish and ResourceOrder name resources in client messages.
	ResourceDish  = "Dish"
	ResourceOrder = "Order"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// posint: a JSON number that is an integer greater than 0.
	if err := v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		return PositiveInteger(fl.Field().Interface())
	}); err != nil {
		panic(err)
	}

	return v
}

// Present reports whether a payload value counts as supplied: a non-empty
// string, a non-zero number, true, or any array or object.
func Present(value any) bool {
	return validate.Var(value, "required") == nil
}

// MaxInteger is the largest integer a JSON number carries exactly.
const MaxInteger = 1<<53 - 1

// PositiveInteger reports whether value is a whole number in [1, MaxInteger].
//
// Strings never qualify, even when they look numeric.
func PositiveInteger(value any) bool {
	switch v := value.(type) {
	case float64:
		return v > 0 && v <= MaxInteger && v == math.Trunc(v)
	case int:
		return v > 0 && int64(v) <= MaxInteger
	case int64:
		return v > 0 && v <= MaxInteger
	case json.Number:
		n, err := v.Int64()
		return err == nil && n > 0 && n <= MaxInteger
	default:
		return false
	}
}

// BindPayload binds the `{"data": {...}}` envelope of the request body.
//
// A missing body or missing `data` key yields an empty payload, which the
// presence stages then reject field by field.
func BindPayload(c echo.Context) (chain.Payload, error) {
	var body chain.RequestEnvelope
	if err := c.Bind(&body); err != nil {
		return nil, errs.NewBadRequestError("Request body must be valid JSON")
	}
	if body.Data == nil {
		return chain.Payload{}, nil
	}
	return body.Data, nil
}
