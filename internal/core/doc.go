// Package core implements the well-log conversion logic: LAS to CSV,
// CSV to LAS, depth-column resolution, and curve chart building.
// This package has no UI dependencies and can be used by any frontend.
//
// The LAS file format itself is handled by a collaborator behind the
// Parser/Document/Library interfaces in las.go, so every conversion
// here is testable with fakes that return canned data.
package core
