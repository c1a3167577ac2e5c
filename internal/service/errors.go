package service

import "errors"

// Error taxonomy surfaced to handlers. Ownership failures deliberately map
// to ErrNotFound so one user cannot probe another's rows.
var (
	ErrValidation  = errors.New("validation")
	ErrNotFound    = errors.New("not found")
	ErrExists      = errors.New("already exists")
	ErrCredentials = errors.New("invalid credentials")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrConflict    = errors.New("conflict")
	ErrHasOrders   = errors.New("user has orders")
)
