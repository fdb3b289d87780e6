package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidItem     = errors.New("cart item needs a product and a variant")
	ErrMissingClientID = errors.New("client id is required")

	// -- Resource State --
	ErrCartItemNotFound = errors.New("cart item not found")

	// -- Persistence Failures --
	ErrFailedLoadCart    = errors.New("failed to load cart")
	ErrFailedPersistCart = errors.New("failed to persist cart")
)
