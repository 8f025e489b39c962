// Package query implements the search side of the system: request parsing
// with facet filters, filter expression rendering, context snippet
// extraction, and the two-index search service that cross-checks
// evidence-exchange results against a secondary PDF index.
package query
