package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type sample struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"image_url"`
	Lines    []line `json:"lines"`
}

func TestPayload_Value(t *testing.T) {
	var empty Payload
	assert.Nil(t, empty.Value("name"))

	p := Payload{"name": "Taco"}
	assert.Equal(t, "Taco", p.Value("name"))
	assert.Nil(t, p.Value("price"))
}

func TestPayload_Decode(t *testing.T) {
	// Values as produced by encoding/json for `{"data": {...}}`.
	p := Payload{
		"name":      "Taco",
		"price":     float64(8),
		"image_url": "https://example.com/taco.png",
		"extra":     true,
		"lines": []any{
			map[string]any{"dishId": "d1", "quantity": float64(2)},
		},
	}

	var out sample
	require.NoError(t, p.Decode(&out))

	assert.Equal(t, "Taco", out.Name)
	assert.Equal(t, 8, out.Price)
	assert.Equal(t, "https://example.com/taco.png", out.ImageURL)
	assert.Equal(t, []line{{DishID: "d1", Quantity: 2}}, out.Lines)
	assert.Empty(t, out.ID)
}

func TestPayload_DecodeRejectsMismatchedTypes(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
	}{
		{"bool for string", Payload{"name": true}},
		{"object for string", Payload{"name": map[string]any{"x": float64(1)}}},
		{"array for string", Payload{"image_url": []any{"1"}}},
		{"object for nested string", Payload{"lines": []any{map[string]any{"dishId": map[string]any{"a": float64(1)}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out sample
			assert.Error(t, tt.payload.Decode(&out))
		})
	}
}

func TestPayload_Omit(t *testing.T) {
	p := Payload{"id": float64(5), "name": "Taco"}

	omitted := p.Omit("id", "missing")
	assert.Equal(t, Payload{"name": "Taco"}, omitted)
	assert.Contains(t, p, "id")

	var out sample
	assert.Error(t, p.Decode(&out))
	require.NoError(t, omitted.Decode(&out))
	assert.Equal(t, "Taco", out.Name)
}
