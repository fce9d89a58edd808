// Shared helpers for storefront CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/storefront/internal/catalog"
	"github.com/mesh-intelligence/storefront/internal/sqlite"
	"github.com/mesh-intelligence/storefront/pkg/menu"
	"github.com/mesh-intelligence/storefront/pkg/types"
)

// resolveCatalogPaths returns the category and product catalog file paths for
// the current configuration.
func resolveCatalogPaths() (catalogPath, productsPath string, err error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve data dir: %w", err)
	}
	catalogPath = configCatalogPath
	if catalogPath == "" {
		catalogPath = filepath.Join(dataDir, "catalog.json")
	}
	productsPath = filepath.Join(filepath.Dir(catalogPath), "products.json")
	return catalogPath, productsPath, nil
}

// openSource builds the configured CatalogSource. The caller must invoke the
// returned cleanup func when done.
func openSource() (types.CatalogSource, func() error, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	switch configBackend {
	case types.BackendJSON:
		catalogPath, productsPath, err := resolveCatalogPaths()
		if err != nil {
			return nil, nil, err
		}
		src := catalog.NewFileSource(catalogPath, productsPath, logger)
		return src, func() error { return nil }, nil
	default:
		cfg := types.Config{
			Backend:     types.BackendSQLite,
			DataDir:     dataDir,
			CatalogPath: configCatalogPath,
		}
		backend := sqlite.NewBackend()
		if err := backend.Attach(cfg); err != nil {
			return nil, nil, fmt.Errorf("attach backend: %w", err)
		}
		return backend, backend.Detach, nil
	}
}

// loadStore builds a menu.Store populated from the configured CatalogSource.
// The catalog is fully loaded, or the failure is surfaced, before the store
// is returned; no partial catalog states are observable.
func loadStore() (*menu.Store, func() error, error) {
	src, cleanup, err := openSource()
	if err != nil {
		return nil, nil, err
	}

	categories, err := src.Categories()
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	products, err := src.Products()
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	store := menu.NewStore()
	if err := store.SetCatalog(categories, products); err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("populate store: %w", err)
	}

	logger.Debug("store populated",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)))
	return store, cleanup, nil
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
