package catalog

import (
	"testing"

	"ayushyaa-be/internal/category"
	"ayushyaa-be/internal/product"

	"github.com/stretchr/testify/assert"
)

func item(id, name, catName, slug string) *ProductWithVariants {
	return &ProductWithVariants{
		Product:  product.Product{ID: id, Name: name},
		Category: category.Category{Name: catName, Slug: slug},
	}
}

func TestFilter(t *testing.T) {
	items := []*ProductWithVariants{
		item("p-1", "Ragi Laddu", "Foods", "foods"),
		item("p-2", "Neem Soap", "Naturals", "naturals"),
		item("p-3", "Dry Fruit Mix", "Foods", "Foods"),
		item("p-4", "Mystery", "Uncategorized", "uncategorized"),
	}

	t.Run("All", func(t *testing.T) {
		res := Filter(items, "all")
		assert.Len(t, res.Items, 4)
		assert.Equal(t, 4, res.Total)
		assert.Equal(t, map[string]int{"foods": 2, "naturals": 1, "uncategorized": 1}, res.Counts)
	})

	t.Run("AllIsCaseInsensitive", func(t *testing.T) {
		assert.Len(t, Filter(items, "ALL").Items, 4)
		assert.Len(t, Filter(items, "").Items, 4)
	})

	t.Run("BySlugCaseInsensitive", func(t *testing.T) {
		res := Filter(items, "FOODS")
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "p-1", res.Items[0].ID)
		assert.Equal(t, "p-3", res.Items[1].ID)
		assert.Equal(t, 4, res.Total)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		res := Filter(items, "spices")
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.Counts["spices"])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		res := Filter(nil, "foods")
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Counts)
		assert.Equal(t, 0, res.Total)
	})
}

func TestSortByCategoryAndName(t *testing.T) {
	items := []*ProductWithVariants{
		item("p-1", "neem soap", "Naturals", "naturals"),
		item("p-2", "Ragi Laddu", "Foods", "foods"),
		item("p-3", "Almond Mix", "Foods", "foods"),
	}

	SortByCategoryAndName(items)

	assert.Equal(t, []string{"p-3", "p-2", "p-1"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestFirstVariant(t *testing.T) {
	p := item("p-1", "A", "Foods", "foods")
	assert.Nil(t, p.FirstVariant())

	p.Variants = []*product.Variant{{ID: "v-1"}, {ID: "v-2"}}
	assert.Equal(t, "v-1", p.FirstVariant().ID)
}
