// Package ogmeta extracts Open Graph Protocol metadata from HTML documents.
// It resolves namespace prefixes from root/head attributes, scans the
// document's meta declarations in order, and reconstructs structured
// property groups (repeated image structures, type-gated profile and
// article objects) from the flat property/content pairs.
//
// This package contains domain types and the pure extraction logic
// following Ben Johnson's Standard Package Layout. Implementations of the
// collaborator interfaces live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, http/).
package ogmeta
