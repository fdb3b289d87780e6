package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// AllCategories is the sentinel slug that disables filtering.
const AllCategories = "all"

type FilterResult struct {
	Items  []*ProductWithVariants `json:"items"`
	Counts map[string]int         `json:"counts"`
	Total  int                    `json:"total"`
}

// Filter narrows items to the given category slug (case-insensitive) and
// reports how many items fall under each slug present in the input.
func Filter(items []*ProductWithVariants, slug string) FilterResult {
	counts := lo.CountValuesBy(items, func(p *ProductWithVariants) string {
		return strings.ToLower(p.Category.Slug)
	})

	want := strings.ToLower(strings.TrimSpace(slug))
	filtered := items
	if want != "" && want != AllCategories {
		filtered = lo.Filter(items, func(p *ProductWithVariants, _ int) bool {
			return strings.ToLower(p.Category.Slug) == want
		})
	}
	if filtered == nil {
		filtered = []*ProductWithVariants{}
	}

	return FilterResult{
		Items:  filtered,
		Counts: counts,
		Total:  len(items),
	}
}

// SortByCategoryAndName orders items in place by category name, then product name.
func SortByCategoryAndName(items []*ProductWithVariants) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := strings.ToLower(items[i].Category.Name), strings.ToLower(items[j].Category.Name)
		if ci != cj {
			return ci < cj
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}
