package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Document is a file handed to the ingestion pipeline. It is immutable once
// read: the pipeline never mutates Content.
type Document struct {
	// Name is the storage path of the document, e.g. "reports/2024/summary.pdf".
	Name string

	// ContentType is the declared media type, e.g. "application/pdf".
	ContentType string

	// Content holds the raw bytes of the document.
	Content []byte
}

// Section is a token-bounded span of a document's text. Sections are emitted
// in reading order; SequenceNumber starts at 0 and increases by 1 per section.
type Section struct {
	Text           string
	SequenceNumber int
}

// IndexDocument is the unit persisted to the search index, one per section.
// IDs are deterministic so re-processing the same document overwrites prior
// entries instead of duplicating them.
type IndexDocument struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Embedding  []float32 `json:"embedding"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Sourcefile string    `json:"sourcefile"`
	Sourcepage string    `json:"sourcepage"`
	URLs       []string  `json:"urls"`
	StorageURL string    `json:"storageUrl"`
}

// BlobInfo describes a stored blob. It is persisted alongside the blob
// content and returned by blob repository lookups.
type BlobInfo struct {
	Container   string
	Name        string
	ContentType string
	Size        int64
	ETag        string // hex BLAKE2b hash of the content
	Metadata    map[string]string
	UploadedAt  time.Time
}

// ContentETag computes the ETag for blob content using BLAKE2b.
// Identical content always produces an identical tag.
func ContentETag(content []byte) string {
	h, _ := blake2b.New(16, nil)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}
