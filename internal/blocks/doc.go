// Package blocks holds the shared building blocks of the catalog: field
// constructors, OAuth scope sets and the query parameters common to the
// Cloud Storage JSON API.
//
// Each supported service lives in its own sub-package with one file per
// REST resource. Package catalog assembles them.
package blocks
