package repositories

import "errors"

var (
	// ErrNotFound signals that a lookup, update or delete matched no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-index violation (slug, email, wishlist pair).
	ErrDuplicate = errors.New("record already exists")
)
