package types

import "errors"

// CatalogSource provides read access to the category and product catalogs.
// Implementations fetch from an external resource (JSON file, SQLite
// database); the returned slices preserve source order and are safe for the
// caller to retain.
type CatalogSource interface {
	// Categories returns the ordered category catalog.
	Categories() ([]MenuCategory, error)

	// Products returns the product catalog.
	Products() ([]Product, error)
}

// Attachable is a CatalogSource with an explicit lifecycle. Callers attach
// with a Config before reading and detach when done.
type Attachable interface {
	CatalogSource

	// Attach connects the source to the resource described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases resources. Idempotent: multiple calls succeed.
	// After Detach, catalog reads return ErrStoreDetached.
	Detach() error
}

// Errors returned by catalog source implementations.
var (
	ErrStoreDetached   = errors.New("catalog store is detached")
	ErrAlreadyAttached = errors.New("catalog store is already attached")
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidData     = errors.New("invalid entity data")
)
