// Package catalog loads the category and product catalogs from JSON
// resources. A load either yields the complete decoded catalog or fails with
// a *LoadError carrying the cause; it never substitutes a partial or empty
// result, so the caller decides fallback policy.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/storefront/pkg/types"
)

// LoadError reports a catalog resource that is missing or failed to parse
// into the expected shape.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the category catalog at path, order preserved from
// the source. Each category receives a fresh UUID v7 CategoryID.
func Load(path string) ([]types.MenuCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return decodeCategories(path, data)
}

// LoadFS is Load reading from an fs.FS, for embedded or bundled catalogs.
func LoadFS(fsys fs.FS, name string) ([]types.MenuCategory, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return decodeCategories(name, data)
}

// LoadProducts reads and decodes the product catalog at path, order
// preserved from the source. Each product receives a fresh UUID v7 ProductID.
func LoadProducts(path string) ([]types.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return decodeProducts(path, data)
}

// LoadProductsFS is LoadProducts reading from an fs.FS.
func LoadProductsFS(fsys fs.FS, name string) ([]types.Product, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return decodeProducts(name, data)
}

func decodeCategories(path string, data []byte) ([]types.MenuCategory, error) {
	var records []categoryJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	categories := make([]types.MenuCategory, 0, len(records))
	for i, rec := range records {
		if rec.Title == nil || *rec.Title == "" {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("category %d: %w", i, types.ErrInvalidTitle)}
		}
		if rec.SubMenus == nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("category %d (%s): missing required field %q", i, *rec.Title, "subMenus")}
		}
		c := types.MenuCategory{
			CategoryID:    newID(),
			Title:         *rec.Title,
			SubCategories: append([]string(nil), *rec.SubMenus...),
		}
		if err := c.Validate(); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("category %d (%s): %w", i, c.Title, err)}
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func decodeProducts(path string, data []byte) ([]types.Product, error) {
	var records []productJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	products := make([]types.Product, 0, len(records))
	for i, rec := range records {
		if rec.Name == nil || *rec.Name == "" {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("product %d: %w", i, types.ErrInvalidName)}
		}
		products = append(products, types.Product{
			ProductID:   newID(),
			Name:        *rec.Name,
			Category:    rec.Category,
			SubCategory: rec.SubCategory,
		})
	}
	return products, nil
}

// newID generates a UUID v7 for entity IDs, falling back to v4 when the
// clock-based generator fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
