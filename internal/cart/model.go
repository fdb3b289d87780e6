package cart

import "ayushyaa-be/internal/product"

// Item is one ledger line, keyed by (Product.ID, Variant.ID).
type Item struct {
	Product  product.Product `json:"product"`
	Variant  product.Variant `json:"variant"`
	Quantity int             `json:"quantity"`
}

func (i Item) matches(productID, variantID string) bool {
	return i.Product.ID == productID && i.Variant.ID == variantID
}

// Snapshot is what observers receive after every mutation.
type Snapshot struct {
	Items []Item  `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Observer is notified after the ledger has been persisted.
type Observer func(Snapshot)
