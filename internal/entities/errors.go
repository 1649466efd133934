package entities

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrCartNotFound  = errors.New("cart not found")
	ErrOrderNotFound = errors.New("order not found")

	// ErrCartEmpty: an order must always have at least one line item,
	// so conversion of an absent or already consumed cart fails.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrInvalidOrderOperation: a status-gated operation was attempted
	// from a status that forbids it.
	ErrInvalidOrderOperation = errors.New("operation not allowed for order status")
)
