package model

// Dish is a menu item. Price is a positive integer.
type Dish struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Price       int    `json:"price" yaml:"price"`
	ImageURL    string `json:"image_url" yaml:"image_url"`
}

func (d Dish) GetID() string { return d.ID }
