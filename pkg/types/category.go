package types

import "errors"

// MenuCategory is a top-level menu entry with an ordered list of
// sub-categories. Categories are created once by the catalog loader and are
// read-only afterwards; the CategoryID is assigned at load time and never
// reused or mutated.
type MenuCategory struct {
	CategoryID    string   // UUID v7, generated when the catalog is decoded.
	Title         string   // Display title (required, non-empty).
	SubCategories []string // Ordered, unique within the category.
}

// Category entity errors.
var (
	ErrInvalidTitle         = errors.New("category title must not be empty")
	ErrDuplicateSubCategory = errors.New("duplicate sub-category name")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownSubCategory   = errors.New("unknown sub-category")
	ErrNoCategoryOpen       = errors.New("no category is open for selection")
	ErrEmptySelection       = errors.New("no sub-categories selected")
)

// Validate checks that the category is well-formed: a non-empty title and
// no duplicate sub-category names.
func (c *MenuCategory) Validate() error {
	if c.Title == "" {
		return ErrInvalidTitle
	}
	seen := make(map[string]bool, len(c.SubCategories))
	for _, name := range c.SubCategories {
		if seen[name] {
			return ErrDuplicateSubCategory
		}
		seen[name] = true
	}
	return nil
}

// HasSubCategory reports whether name is one of the category's sub-categories.
func (c *MenuCategory) HasSubCategory(name string) bool {
	for _, s := range c.SubCategories {
		if s == name {
			return true
		}
	}
	return false
}
