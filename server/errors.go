package server

import "errors"

var (
	// ErrBlobRepositoryRequired is returned when a blob repository is not provided.
	ErrBlobRepositoryRequired = errors.New("blob repository required")

	// ErrSearchServiceRequired is returned when a search service is not provided.
	ErrSearchServiceRequired = errors.New("search service required")
)
