package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("variant not found")

	ErrFailedListProducts = errors.New("failed to list products")
	ErrFailedGetProduct   = errors.New("failed to get product")
	ErrFailedWriteProduct = errors.New("failed to write product")
	ErrFailedListVariants = errors.New("failed to list variants")
	ErrFailedWriteVariant = errors.New("failed to write variant")
)
