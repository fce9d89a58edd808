// Package main provides the storefront CLI: a presentation layer over the
// menu selection store and the catalog backends.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
