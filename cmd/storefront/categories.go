// Categories command: list the catalog categories and their sub-categories.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Long:  "List the menu categories and their sub-categories in display order.",
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	src, cleanup, err := openSource()
	if err != nil {
		return err
	}
	defer cleanup()

	categories, err := src.Categories()
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return printJSON(out, categories)
	}

	if len(categories) == 0 {
		fmt.Fprintln(out, "No categories; run 'storefront init' to seed the sample catalog.")
		return nil
	}
	for _, c := range categories {
		fmt.Fprintf(out, "%s: %s\n", c.Title, strings.Join(c.SubCategories, ", "))
	}
	return nil
}
