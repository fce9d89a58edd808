// This file implements the backend lifecycle: Attach opens the database,
// creates the schema, and loads the JSON catalog files; Detach releases the
// connection. The JSON files are the source of truth, SQLite is the query
// engine.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/storefront/internal/catalog"
	"github.com/mesh-intelligence/storefront/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "storefront.db"

var _ types.Attachable = (*Backend)(nil)

// Backend implements the Attachable catalog source using SQLite as the query
// engine and the JSON catalog files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	catalogPath  string
	productsPath string
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, rebuilds the SQLite schema, and loads the
// catalog files. Loading is all-or-nothing: on any failure the backend stays
// detached and no partial catalog is observable.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	b.catalogPath = config.CatalogPath
	if b.catalogPath == "" {
		b.catalogPath = filepath.Join(dataDir, "catalog.json")
	}
	b.productsPath = filepath.Join(filepath.Dir(b.catalogPath), "products.json")

	// The database is rebuilt from the JSON files on every attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("creating schema: %w", err)
	}

	if err := initCatalogFiles(b.catalogPath, b.productsPath); err != nil {
		db.Close()
		return err
	}

	if err := loadCatalogFiles(db, b.catalogPath, b.productsPath); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach releases the database connection. After Detach, catalog reads
// return ErrStoreDetached. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// initCatalogFiles creates empty catalog files (a bare JSON array) when they
// do not exist, so a fresh data dir attaches cleanly. Existing files are
// never touched.
func initCatalogFiles(paths ...string) error {
	for _, path := range paths {
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return fmt.Errorf("initializing %s: %w", path, err)
		}
	}
	return nil
}

// loadCatalogFiles decodes the JSON catalogs and inserts them into SQLite in
// one transaction.
func loadCatalogFiles(db *sql.DB, catalogPath, productsPath string) error {
	categories, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}
	products, err := catalog.LoadProducts(productsPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for i, c := range categories {
		if _, err := tx.Exec(
			"INSERT INTO categories (category_id, title, ordinal) VALUES (?, ?, ?)",
			c.CategoryID, c.Title, i,
		); err != nil {
			return fmt.Errorf("loading category %s: %w", c.Title, err)
		}
		for j, name := range c.SubCategories {
			if _, err := tx.Exec(
				"INSERT INTO subcategories (category_id, name, ordinal) VALUES (?, ?, ?)",
				c.CategoryID, name, j,
			); err != nil {
				return fmt.Errorf("loading sub-category %s: %w", name, err)
			}
		}
	}

	for i, p := range products {
		if _, err := tx.Exec(
			"INSERT INTO products (product_id, name, category, subcategory, ordinal) VALUES (?, ?, ?, ?, ?)",
			p.ProductID, p.Name, p.Category, p.SubCategory, i,
		); err != nil {
			return fmt.Errorf("loading product %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}
