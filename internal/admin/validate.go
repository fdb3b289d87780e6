package admin

import (
	"math"
	"strings"

	"ayushyaa-be/internal/utils"
)

type fieldErrors map[string]string

func (f fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "is required"
	}
}

func (f fieldErrors) nonNegative(field string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		f[field] = "must be a number"
		return
	}
	if value < 0 {
		f[field] = "must not be negative"
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// normalizeProduct trims text fields and derives a blank slug from the name.
func normalizeProduct(in ProductInput) ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Name)
	}
	return in
}

func validateProduct(p ProductInput, v VariantInput) error {
	errs := fieldErrors{}
	errs.required("name", p.Name)
	errs.required("slug", p.Slug)
	errs.required("description", p.Description)
	errs.required("category_id", p.CategoryID)
	errs.nonNegative("base_price", p.BasePrice)

	errs.required("weight", v.Weight)
	errs.nonNegative("price", v.Price)
	errs.nonNegative("stock", float64(v.Stock))
	return errs.err()
}

func validateCategory(c CategoryInput) error {
	errs := fieldErrors{}
	errs.required("name", c.Name)
	errs.required("slug", c.Slug)
	return errs.err()
}
