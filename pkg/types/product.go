package types

import "errors"

// Product is a single catalog item. Products are static sample data: created
// once by the catalog loader, never updated or deleted for the lifetime of
// the process.
type Product struct {
	ProductID   string // UUID v7, generated when the catalog is decoded.
	Name        string // Human-readable name (required, non-empty).
	Category    string // Title of the category the product belongs to.
	SubCategory string // Sub-category facet used for filtering.
}

// Product entity errors.
var ErrInvalidName = errors.New("product name must not be empty")

// Validate checks that the product is well-formed.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	return nil
}
