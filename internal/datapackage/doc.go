// Package datapackage defines the data package manifest written next to the
// household dataset files, together with its JSON encoding and validation.
//
// Struct field order follows the key order of the published manifest, so
// encoding a Package always yields the same document layout.
package datapackage
