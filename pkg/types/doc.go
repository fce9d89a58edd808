// Package types defines the catalog entity types, the CatalogSource
// interface, selection phases, and standard errors for the Storefront
// menu system.
package types
