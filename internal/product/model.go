package product

import "time"

type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	BasePrice   float64   `json:"base_price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Variant is a purchasable weight/price/stock combination, stored under its product.
type Variant struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Weight    string  `json:"weight"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	IsActive  bool    `json:"is_active"`
}

type ListOptions struct {
	OnlyActive bool
}

type GetProductOptions struct {
	ProductID  string
	OnlyActive bool
}
