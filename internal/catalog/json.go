// JSON record structures for the catalog resource format. These mirror the
// on-disk payload; unknown extra fields are ignored, missing required fields
// are a decode failure.
package catalog

// categoryJSON represents one category object in catalog.json.
// Pointer fields distinguish absent required fields from empty values.
type categoryJSON struct {
	Title    *string   `json:"title"`
	SubMenus *[]string `json:"subMenus"`
}

// productJSON represents one product object in products.json.
type productJSON struct {
	Name        *string `json:"name"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
}
