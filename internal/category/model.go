package category

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	UncategorizedName = "Uncategorized"
	UncategorizedSlug = "uncategorized"
)

// Placeholder is what a product resolves to when its category is unknown.
func Placeholder() Category {
	return Category{Name: UncategorizedName, Slug: UncategorizedSlug}
}

// WithDefaults fills unset name/slug with the Uncategorized values.
func (c Category) WithDefaults() Category {
	if c.Name == "" {
		c.Name = UncategorizedName
	}
	if c.Slug == "" {
		c.Slug = UncategorizedSlug
	}
	return c
}

// Defaults are written when the category collection is found empty.
var Defaults = []Category{
	{Name: "Foods", Slug: "foods", Description: "Natural food products and nutrition"},
	{Name: "Naturals", Slug: "naturals", Description: "Natural personal care and herbal products"},
}
