// Products command: list products, optionally filtered through the selection
// store by category and sub-categories.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storefront/pkg/types"
)

var (
	flagProductsCategory string
	flagProductsSubs     []string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long: `List the product catalog. With --category and --sub the products are
filtered through the selection store: the category's sub-menu is opened, the
given sub-categories are selected, and only matching products are printed.`,
	RunE: runProducts,
}

func init() {
	productsCmd.Flags().StringVar(&flagProductsCategory, "category", "", "category title to open")
	productsCmd.Flags().StringSliceVar(&flagProductsSubs, "sub", nil, "sub-categories to select (comma-separated)")
}

func runProducts(cmd *cobra.Command, args []string) error {
	if len(flagProductsSubs) > 0 && flagProductsCategory == "" {
		return errors.New("--sub requires --category")
	}

	store, cleanup, err := loadStore()
	if err != nil {
		return err
	}
	defer cleanup()

	products := store.Products()
	if flagProductsCategory != "" {
		c, err := store.CategoryByTitle(flagProductsCategory)
		if err != nil {
			return fmt.Errorf("category %q: %w", flagProductsCategory, err)
		}
		if err := store.SelectCategory(c.CategoryID); err != nil {
			return err
		}
		for _, name := range flagProductsSubs {
			if err := store.ToggleSubCategory(name); err != nil {
				return fmt.Errorf("sub-category %q: %w", name, err)
			}
		}
		products = store.FilteredProducts()
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return printJSON(out, products)
	}

	if len(products) == 0 {
		fmt.Fprintln(out, "No products.")
		return nil
	}
	for _, p := range products {
		printProduct(out, p)
	}
	return nil
}

// printProduct writes one product line in the plain output mode.
func printProduct(out io.Writer, p types.Product) {
	fmt.Fprintf(out, "%s (%s / %s)\n", p.Name, p.Category, p.SubCategory)
}
