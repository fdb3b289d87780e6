package catalog

import (
	"ayushyaa-be/internal/category"
	"ayushyaa-be/internal/metrics"
	"ayushyaa-be/internal/product"
)

// ProductWithVariants is the read-side join of a product, its resolved
// category and its variant sub-collection. It is rebuilt on every load.
type ProductWithVariants struct {
	product.Product
	Category category.Category  `json:"category"`
	Variants []*product.Variant `json:"variants"`
}

// FirstVariant returns the variant the admin screens edit, or nil.
func (p *ProductWithVariants) FirstVariant() *product.Variant {
	if len(p.Variants) == 0 {
		return nil
	}
	return p.Variants[0]
}

// Stats are process-lifetime counters for the aggregator.
type Stats struct {
	Loads        uint64 `json:"loads"`
	ReadFailures uint64 `json:"read_failures"`
	Seeds        uint64 `json:"seeds"`

	LoadLatency metrics.LatencyStats `json:"load_latency"`
}
