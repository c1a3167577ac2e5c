package repo

import (
	"errors"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrCartChanged = errors.New("cart changed during order placement")
	ErrPhoneTaken  = errors.New("phone already registered")
	ErrEmailTaken  = errors.New("email already registered")
	ErrHasOrders   = errors.New("user has orders")
)

// colorScope narrows a cart query to one color variant, treating the
// no-color case as its own variant. Kept dialect-neutral (no
// IS NOT DISTINCT FROM) so the sqlite test driver behaves like Postgres.
func colorScope(q *gorm.DB, colorID *uint) *gorm.DB {
	if colorID == nil {
		return q.Where("color_id IS NULL")
	}
	return q.Where("color_id = ?", *colorID)
}
