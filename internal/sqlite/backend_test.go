package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/storefront/internal/catalog"
	"github.com/mesh-intelligence/storefront/pkg/types"
)

const testCatalogJSON = `[
	{"title": "Category 1", "subMenus": ["A", "B"]},
	{"title": "Category 2", "subMenus": ["C"]}
]`

const testProductsJSON = `[
	{"name": "P1", "category": "Category 1", "subCategory": "A"},
	{"name": "P2", "category": "Category 1", "subCategory": "B"},
	{"name": "P3", "category": "Category 2", "subCategory": "C"}
]`

// attachTestBackend writes the test catalogs into a temp data dir and returns
// an attached backend. Detach is registered as cleanup.
func attachTestBackend(t *testing.T) *Backend {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "catalog.json"), []byte(testCatalogJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "products.json"), []byte(testProductsJSON), 0o644))

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestBackendLifecycle(t *testing.T) {
	t.Run("double attach rejected", func(t *testing.T) {
		b := attachTestBackend(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		b := attachTestBackend(t)
		require.NoError(t, b.Detach())
		require.NoError(t, b.Detach())
	})

	t.Run("reads after detach rejected", func(t *testing.T) {
		b := attachTestBackend(t)
		require.NoError(t, b.Detach())

		_, err := b.Categories()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		_, err = b.Products()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		_, err = b.ProductsBySubCategories([]string{"A"})
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{Backend: "postgres"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("fresh data dir attaches with empty catalogs", func(t *testing.T) {
		dataDir := t.TempDir()
		b := NewBackend()
		require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
		defer b.Detach()

		categories, err := b.Categories()
		require.NoError(t, err)
		assert.Empty(t, categories)

		// The placeholder catalog files were created.
		_, err = os.Stat(filepath.Join(dataDir, "catalog.json"))
		assert.NoError(t, err)
	})
}

func TestBackendCategories(t *testing.T) {
	b := attachTestBackend(t)

	categories, err := b.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Category 1", categories[0].Title)
	assert.Equal(t, []string{"A", "B"}, categories[0].SubCategories)
	assert.Equal(t, "Category 2", categories[1].Title)
	assert.Equal(t, []string{"C"}, categories[1].SubCategories)
	assert.NotEmpty(t, categories[0].CategoryID)
}

func TestBackendCategory(t *testing.T) {
	b := attachTestBackend(t)

	categories, err := b.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	t.Run("found by id", func(t *testing.T) {
		c, err := b.Category(categories[0].CategoryID)
		require.NoError(t, err)
		assert.Equal(t, "Category 1", c.Title)
		assert.Equal(t, []string{"A", "B"}, c.SubCategories)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := b.Category("cat-99")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("detached", func(t *testing.T) {
		require.NoError(t, b.Detach())
		_, err := b.Category(categories[0].CategoryID)
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})
}

func TestBackendProducts(t *testing.T) {
	b := attachTestBackend(t)

	products, err := b.Products()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "P1", products[0].Name)
	assert.Equal(t, "P3", products[2].Name)
}

func TestProductsBySubCategories(t *testing.T) {
	b := attachTestBackend(t)

	t.Run("empty selection yields no results", func(t *testing.T) {
		products, err := b.ProductsBySubCategories(nil)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("single sub-category", func(t *testing.T) {
		products, err := b.ProductsBySubCategories([]string{"A"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "P1", products[0].Name)
	})

	t.Run("multiple sub-categories in source order", func(t *testing.T) {
		products, err := b.ProductsBySubCategories([]string{"C", "A"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "P1", products[0].Name)
		assert.Equal(t, "P3", products[1].Name)
	})

	t.Run("unknown sub-category yields nothing", func(t *testing.T) {
		products, err := b.ProductsBySubCategories([]string{"Z"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestAttachMalformedCatalog(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "catalog.json"), []byte(`[{"subMenus": ["A"]}]`), 0o644))

	b := NewBackend()
	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.Error(t, err)

	var loadErr *catalog.LoadError
	assert.ErrorAs(t, err, &loadErr)

	// Attach failed all-or-nothing: the backend stays detached.
	_, err = b.Categories()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestAttachCustomCatalogPath(t *testing.T) {
	dataDir := t.TempDir()
	catalogDir := t.TempDir()
	catalogPath := filepath.Join(catalogDir, "menu.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalogJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "products.json"), []byte(testProductsJSON), 0o644))

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend:     types.BackendSQLite,
		DataDir:     dataDir,
		CatalogPath: catalogPath,
	}))
	defer b.Detach()

	categories, err := b.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
