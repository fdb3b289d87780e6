package order

import "errors"

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrInvalidCustomer = errors.New("customer name, phone and shipping address are required")
	ErrClearCart       = errors.New("order built but cart could not be cleared")
)
