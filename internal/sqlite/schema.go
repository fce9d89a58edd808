// Package sqlite implements the SQLite catalog backend for Storefront.
package sqlite

// Schema DDL for the catalog tables. The ordinal columns preserve source
// order across reloads.
const (
	createCategories = `CREATE TABLE categories (
    category_id TEXT PRIMARY KEY,
    title TEXT NOT NULL UNIQUE,
    ordinal INTEGER NOT NULL
);`

	createSubCategories = `CREATE TABLE subcategories (
    category_id TEXT NOT NULL,
    name TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    PRIMARY KEY (category_id, name),
    FOREIGN KEY (category_id) REFERENCES categories(category_id)
);`

	createProducts = `CREATE TABLE products (
    product_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    subcategory TEXT NOT NULL,
    ordinal INTEGER NOT NULL
);`
)

// schemaSQL is the full schema executed on Attach.
var schemaSQL = createCategories + "\n" + createSubCategories + "\n" + createProducts
