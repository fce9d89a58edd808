// This file implements the catalog read accessors over the SQLite tables.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/storefront/pkg/types"
)

// Categories returns the ordered category catalog with sub-categories in
// source order.
func (b *Backend) Categories() ([]types.MenuCategory, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query("SELECT category_id, title FROM categories ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []types.MenuCategory
	for rows.Next() {
		var c types.MenuCategory
		if err := rows.Scan(&c.CategoryID, &c.Title); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}

	for i := range categories {
		subs, err := b.subCategories(categories[i].CategoryID)
		if err != nil {
			return nil, err
		}
		categories[i].SubCategories = subs
	}
	return categories, nil
}

// Category returns the single category with the given ID, or ErrNotFound if
// no such category exists in the catalog.
func (b *Backend) Category(categoryID string) (types.MenuCategory, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.MenuCategory{}, types.ErrStoreDetached
	}

	var c types.MenuCategory
	row := b.db.QueryRow(
		"SELECT category_id, title FROM categories WHERE category_id = ?",
		categoryID,
	)
	if err := row.Scan(&c.CategoryID, &c.Title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.MenuCategory{}, fmt.Errorf("category %q: %w", categoryID, types.ErrNotFound)
		}
		return types.MenuCategory{}, fmt.Errorf("scanning category: %w", err)
	}

	subs, err := b.subCategories(c.CategoryID)
	if err != nil {
		return types.MenuCategory{}, err
	}
	c.SubCategories = subs
	return c, nil
}

// subCategories returns the ordered sub-category names for one category.
func (b *Backend) subCategories(categoryID string) ([]string, error) {
	rows, err := b.db.Query(
		"SELECT name FROM subcategories WHERE category_id = ? ORDER BY ordinal",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sub-categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning sub-category: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Products returns the product catalog in source order.
func (b *Backend) Products() ([]types.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.queryProducts(
		"SELECT product_id, name, category, subcategory FROM products ORDER BY ordinal",
	)
}

// ProductsBySubCategories returns the products whose sub-category is in
// names, in source order. An empty names list yields an empty result: no
// selection means no results.
func (b *Backend) ProductsBySubCategories(names []string) ([]types.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if len(names) == 0 {
		return []types.Product{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := fmt.Sprintf(
		"SELECT product_id, name, category, subcategory FROM products WHERE subcategory IN (%s) ORDER BY ordinal",
		placeholders,
	)
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	return b.queryProducts(query, args...)
}

// queryProducts runs a product query and hydrates the rows. The caller must
// hold at least a read lock.
func (b *Backend) queryProducts(query string, args ...any) ([]types.Product, error) {
	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []types.Product{}
	for rows.Next() {
		p, err := hydrateProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// hydrateProduct scans one product row.
func hydrateProduct(rows *sql.Rows) (types.Product, error) {
	var p types.Product
	if err := rows.Scan(&p.ProductID, &p.Name, &p.Category, &p.SubCategory); err != nil {
		return types.Product{}, fmt.Errorf("scanning product: %w", err)
	}
	return p, nil
}
