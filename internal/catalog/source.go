package catalog

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/storefront/pkg/types"
)

var _ types.CatalogSource = (*FileSource)(nil)

// FileSource is a CatalogSource backed by plain JSON files on disk. Reads go
// straight to the files; there is no caching, the catalogs are small.
type FileSource struct {
	catalogPath  string
	productsPath string
	log          *zap.Logger
}

// NewFileSource creates a FileSource reading categories from catalogPath and
// products from productsPath. A nil logger disables load diagnostics.
func NewFileSource(catalogPath, productsPath string, log *zap.Logger) *FileSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileSource{
		catalogPath:  catalogPath,
		productsPath: productsPath,
		log:          log,
	}
}

// Categories loads the ordered category catalog from the catalog file.
func (f *FileSource) Categories() ([]types.MenuCategory, error) {
	categories, err := Load(f.catalogPath)
	if err != nil {
		f.log.Warn("catalog load failed", zap.String("path", f.catalogPath), zap.Error(err))
		return nil, err
	}
	f.log.Debug("catalog loaded", zap.String("path", f.catalogPath), zap.Int("categories", len(categories)))
	return categories, nil
}

// Products loads the product catalog from the products file.
func (f *FileSource) Products() ([]types.Product, error) {
	products, err := LoadProducts(f.productsPath)
	if err != nil {
		f.log.Warn("product catalog load failed", zap.String("path", f.productsPath), zap.Error(err))
		return nil, err
	}
	f.log.Debug("product catalog loaded", zap.String("path", f.productsPath), zap.Int("products", len(products)))
	return products, nil
}
