package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storefront/pkg/storefront"
)

const modulePath = "github.com/mesh-intelligence/storefront"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the storefront version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "storefront v%s\nmodule: %s\n", storefront.Version, modulePath)
		return nil
	},
}
