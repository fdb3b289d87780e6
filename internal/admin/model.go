package admin

import "ayushyaa-be/internal/product"

// ProductInput carries the product half of the admin form.
// ImageURL is used only when no upload accompanies the request.
type ProductInput struct {
	Name        string
	Slug        string
	Description string
	CategoryID  string
	ImageURL    string
	BasePrice   float64
	IsActive    bool
}

// VariantInput is the single variant the admin form edits.
type VariantInput struct {
	Weight string
	Price  float64
	Stock  int
}

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
}

// ProductRecord is a written product together with its variants.
type ProductRecord struct {
	product.Product
	Variants []*product.Variant `json:"variants"`
}
