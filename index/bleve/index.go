// Package bleve implements index.Client on a local bleve full-text index.
package bleve

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/poiesic/evidex/core"
	"github.com/poiesic/evidex/index"
)

// Index is a bleve-backed search index.
type Index struct {
	idx    bleve.Index
	name   string
	logger *slog.Logger
}

var _ index.Client = (*Index)(nil)

// Open opens the index at dir, creating it with the evidex document mapping
// when it does not exist yet.
//
// Returns index.Client interface to enforce abstraction.
func Open(dir, name string) (index.Client, error) {
	idx, err := bleve.Open(dir)
	if err != nil {
		if _, statErr := os.Stat(dir); statErr == nil {
			return nil, fmt.Errorf("open index %s: %w", name, err)
		}
		idx, err = bleve.New(dir, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index %s: %w", name, err)
		}
	}
	return newIndex(idx, name), nil
}

// OpenMemory creates an in-memory index, used by tests and the CLI's
// throwaway runs.
func OpenMemory(name string) (index.Client, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create in-memory index %s: %w", name, err)
	}
	return newIndex(idx, name), nil
}

func newIndex(idx bleve.Index, name string) *Index {
	return &Index{
		idx:    idx,
		name:   name,
		logger: slog.Default().With("component", "bleve-index", "index", name),
	}
}

// Name returns the index name this client addresses.
func (b *Index) Name() string {
	return b.name
}

// UploadDocuments upserts the batch into the index, keyed by document id.
// Re-uploading an id overwrites the previous document.
func (b *Index) UploadDocuments(ctx context.Context, docs []core.IndexDocument) ([]index.UploadResult, error) {
	batch := b.idx.NewBatch()
	results := make([]index.UploadResult, 0, len(docs))

	for i := range docs {
		doc := &docs[i]
		if err := core.ValidateIndexDocument(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", index.ErrInvalidDocument, err)
		}
		if err := batch.Index(doc.ID, indexFields(doc)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", index.ErrUpload, doc.ID, err)
		}
		results = append(results, index.UploadResult{ID: doc.ID, Succeeded: true})
	}

	if err := b.idx.Batch(batch); err != nil {
		b.logger.Error("batch upload failed", "docs", len(docs), "err", err)
		return nil, fmt.Errorf("%w: %v", index.ErrUpload, err)
	}

	b.logger.Info("uploaded documents", "docs", len(docs))
	return results, nil
}

// indexFields flattens an IndexDocument into the field map stored in bleve.
// The embedding vector is intentionally left out: this backend serves
// full-text queries, and vector storage stays with the IndexDocument shape
// for backends that persist it.
func indexFields(doc *core.IndexDocument) map[string]any {
	return map[string]any{
		"content":    doc.Content,
		"title":      doc.Title,
		"category":   doc.Category,
		"sourcefile": doc.Sourcefile,
		"sourcepage": doc.Sourcepage,
		"urls":       doc.URLs,
		"storageUrl": doc.StorageURL,
	}
}

// Close releases the underlying bleve index.
func (b *Index) Close() error {
	return b.idx.Close()
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = "en"
	indexMapping.DefaultField = "content"

	docMapping := bleve.NewDocumentMapping()

	contentField := bleve.NewTextFieldMapping()
	contentField.Store = true
	contentField.Index = true
	docMapping.AddFieldMappingsAt("content", contentField)

	titleField := bleve.NewTextFieldMapping()
	titleField.Store = true
	titleField.Index = true
	docMapping.AddFieldMappingsAt("title", titleField)

	for _, name := range []string{"sourcefile", "sourcepage", "storageUrl", "urls"} {
		field := bleve.NewTextFieldMapping()
		field.Store = true
		field.Index = true
		field.Analyzer = "keyword"
		docMapping.AddFieldMappingsAt(name, field)
	}

	// Facet fields carried by enriched documents. Keyword-analyzed so
	// filter values match exactly.
	for _, name := range []string{
		"category", "programs", "ages_studied", "focus_population",
		"domain", "subdomain_1", "subdomain_2", "subdomain_3",
		"resource_type", "embedded_urls", "pdf_urls",
	} {
		field := bleve.NewTextFieldMapping()
		field.Store = true
		field.Index = true
		field.Analyzer = "keyword"
		docMapping.AddFieldMappingsAt(name, field)
	}

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}
