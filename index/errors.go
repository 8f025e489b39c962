package index

import "errors"

var (
	// ErrUpload indicates a bulk document upload failed.
	ErrUpload = errors.New("index upload failed")

	// ErrSearch indicates a search query failed.
	ErrSearch = errors.New("index search failed")

	// ErrInvalidDocument indicates a document failed validation before upload.
	ErrInvalidDocument = errors.New("invalid document for upload")
)
