// Init command: create configuration and data directories and seed a sample
// catalog so the other commands have something to browse.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/storefront/internal/sqlite"
	"github.com/mesh-intelligence/storefront/pkg/types"
)

// sampleCatalogJSON is written to catalog.json when no catalog exists yet.
const sampleCatalogJSON = `[
  {"title": "Drinks", "subMenus": ["Hot Drinks", "Cold Drinks", "Smoothies"]},
  {"title": "Bakery", "subMenus": ["Breads", "Pastries"]},
  {"title": "Snacks", "subMenus": ["Chips", "Nuts"]}
]
`

// sampleProductsJSON is written to products.json when no product catalog
// exists yet.
const sampleProductsJSON = `[
  {"name": "Espresso", "category": "Drinks", "subCategory": "Hot Drinks"},
  {"name": "Flat White", "category": "Drinks", "subCategory": "Hot Drinks"},
  {"name": "Iced Latte", "category": "Drinks", "subCategory": "Cold Drinks"},
  {"name": "Mango Smoothie", "category": "Drinks", "subCategory": "Smoothies"},
  {"name": "Sourdough Loaf", "category": "Bakery", "subCategory": "Breads"},
  {"name": "Croissant", "category": "Bakery", "subCategory": "Pastries"},
  {"name": "Cinnamon Roll", "category": "Bakery", "subCategory": "Pastries"},
  {"name": "Sea Salt Chips", "category": "Snacks", "subCategory": "Chips"},
  {"name": "Roasted Almonds", "category": "Snacks", "subCategory": "Nuts"}
]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize storefront storage",
	Long:  "Create configuration and data directories, seed the sample catalog, and initialize the storage backend.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	catalogPath, productsPath, err := resolveCatalogPaths()
	if err != nil {
		return err
	}
	if err := writeFileIfMissing(catalogPath, sampleCatalogJSON); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := writeFileIfMissing(productsPath, sampleProductsJSON); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	// Initialize the backend via Attach then Detach; this also validates the
	// seeded catalog files.
	cfg := types.Config{
		Backend:     types.BackendSQLite,
		DataDir:     dataDir,
		CatalogPath: configCatalogPath,
	}
	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := backend.Detach(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	logger.Debug("storage initialized",
		zap.String("data_dir", dataDir),
		zap.String("catalog", catalogPath))
	fmt.Fprintln(cmd.OutOrStdout(), "Storefront initialized successfully")
	return nil
}

// writeFileIfMissing creates path with content if the file does not exist.
// If it already exists, the function returns nil (idempotent).
func writeFileIfMissing(path, content string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
