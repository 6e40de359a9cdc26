package repository

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/deppfellow/grubdash/internal/model"
)

// Seed data ships inside the binary.
//
//go:embed fixtures/*.yaml
var fixtures embed.FS

// LoadFixtures parses the embedded dish and order fixtures.
func LoadFixtures() ([]model.Dish, []model.Order, error) {
	var dishes []model.Dish
	if err := readFixture("fixtures/dishes.yaml", &dishes); err != nil {
		return nil, nil, err
	}

	var orders []model.Order
	if err := readFixture("fixtures/orders.yaml", &orders); err != nil {
		return nil, nil, err
	}

	return dishes, orders, nil
}

func readFixture(path string, out any) error {
	raw, err := fixtures.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
