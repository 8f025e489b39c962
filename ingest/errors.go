package ingest

import "errors"

var (
	// ErrIndexClientRequired is returned when an index client is not provided.
	ErrIndexClientRequired = errors.New("index client required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrBlobRepositoryRequired is returned when a blob repository is not provided.
	ErrBlobRepositoryRequired = errors.New("blob repository required")

	// ErrPipelineRequired is returned when a pipeline is not provided.
	ErrPipelineRequired = errors.New("pipeline required")

	// ErrStorageAccountRequired is returned when the storage account name is
	// not configured.
	ErrStorageAccountRequired = errors.New("storage account required")

	// ErrInvalidMaxAttempts is returned when a retry policy allows no attempts.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")

	// ErrEmbedding is returned when the embedding service fails persistently
	// after the retry budget is exhausted.
	ErrEmbedding = errors.New("embedding service failure")

	// ErrEmbeddingCountMismatch is returned when the embedding service returns
	// a different number of vectors than sections submitted.
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match section count")
)
