package errors

import "errors"

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrIllegalTransition     = errors.New("order status transition is not allowed")
	ErrInvalidPaymentMethod  = errors.New("payment method is invalid")
	ErrInvalidShippingMethod = errors.New("shipping method is invalid")
	ErrOrderNotFound         = errors.New("order not found")
)
