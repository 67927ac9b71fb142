package services

import "errors"

// Validation errors (bad input) map to 400, not-found errors to 404, and
// business-rule errors to 400. Persistence failures pass through untouched
// and surface as 500.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMenuFieldsRequired = errors.New("name, price, and category are required")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrNegativePrice      = errors.New("price must be non-negative")
	ErrMenuItemNotFound   = errors.New("menu item not found")

	ErrEmptyOrder          = errors.New("order items are required")
	ErrMenuItemUnavailable = errors.New("menu item not available")
	ErrInvalidQuantity     = errors.New("valid quantity is required")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderItemNotFound   = errors.New("order item not found")
	ErrOrderNotPending     = errors.New("cannot modify confirmed orders")
)
