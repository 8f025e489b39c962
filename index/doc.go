// Package index defines the search index client abstraction the ingestion
// pipeline publishes into and the query side reads from.
//
// This package follows a strict "return interface" pattern for public
// constructors: consumers hold an index.Client and never couple to a
// concrete backend. The bleve subpackage provides a local full-text
// implementation; a remote search service client can be slotted in behind
// the same interface.
package index
