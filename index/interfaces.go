package index

import (
	"context"

	"github.com/poiesic/evidex/core"
)

// FacetFilter restricts search results to documents whose field matches one
// of the given values. Filters on the same field OR together; separate
// filters AND together.
type FacetFilter struct {
	// Field is the index field name, e.g. "programs" or "domain".
	Field string

	// Values are the accepted values; a document matches when its field
	// equals any of them.
	Values []string

	// Collection marks fields that hold multiple values per document.
	// It only affects how remote filter expressions are rendered; local
	// backends treat both shapes the same way.
	Collection bool
}

// Query describes a single search against an index.
type Query struct {
	// Text is the full-text search string. Empty or "*" matches all
	// documents (used for count-only queries).
	Text string

	// Filters are ANDed facet restrictions.
	Filters []FacetFilter

	// Fields are the stored fields to return with each hit.
	Fields []string

	// Top caps the number of hits returned.
	Top int

	// IncludeTotalCount requests the total match count alongside hits.
	IncludeTotalCount bool
}

// Hit is a single search match with its requested stored fields.
// Field values are backend-typed: strings or slices of strings.
type Hit struct {
	ID     string
	Score  float64
	Fields map[string]any
}

// Results holds the hits and total count for one query.
type Results struct {
	Hits  []Hit
	Total uint64
}

// UploadResult reports the outcome for one document of a bulk upload.
type UploadResult struct {
	ID        string
	Succeeded bool
	Message   string
}

// Client is a search index backend. Uploads are keyed by document id:
// uploading a document with an existing id overwrites the previous version,
// which is the system's idempotence mechanism.
// Implementations must be thread-safe for concurrent use.
type Client interface {
	// Name returns the index name this client addresses.
	Name() string

	// UploadDocuments performs a bulk upsert of the given documents and
	// returns one result per document, in input order.
	UploadDocuments(ctx context.Context, docs []core.IndexDocument) ([]UploadResult, error)

	// Search executes a query and returns matching hits.
	Search(ctx context.Context, q Query) (*Results, error)

	// Close releases the underlying index resources.
	Close() error
}
