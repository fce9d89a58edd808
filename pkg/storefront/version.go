// Package storefront exposes module-level metadata.
package storefront

// Version is the current storefront release.
const Version = "0.1.0"
