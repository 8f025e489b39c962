package storage

import (
	"context"

	"github.com/poiesic/evidex/core"
)

// PutOptions carries the optional attributes of a blob upload.
type PutOptions struct {
	// ContentType is the declared media type of the content.
	// Defaults to "application/octet-stream" when empty.
	ContentType string

	// Metadata holds caller-defined key/value pairs stored with the blob,
	// e.g. the original URL of captured HTML content.
	Metadata map[string]string
}

// BlobRepository provides operations for storing and retrieving blobs.
// Blobs are addressed by (container, name); names may contain slashes to
// form logical paths.
type BlobRepository interface {
	// PutBlob stores content under container/name, overwriting any
	// existing blob at that address. The container is created when it
	// does not exist yet. Returns the stored blob's info with size, ETag,
	// and upload time populated.
	PutBlob(ctx context.Context, container, name string, content []byte, opts PutOptions) (*core.BlobInfo, error)

	// GetBlob retrieves a blob's content and info.
	// Returns ErrNotFound when no blob exists at the address.
	GetBlob(ctx context.Context, container, name string) ([]byte, *core.BlobInfo, error)

	// GetBlobInfo retrieves only a blob's info.
	// Returns ErrNotFound when no blob exists at the address.
	GetBlobInfo(ctx context.Context, container, name string) (*core.BlobInfo, error)

	// ListBlobs returns the infos of all blobs in a container, in name order.
	// Returns ErrContainerNotFound when the container does not exist.
	ListBlobs(ctx context.Context, container string) ([]*core.BlobInfo, error)

	// DeleteBlob removes a blob.
	// Returns ErrNotFound when no blob exists at the address.
	DeleteBlob(ctx context.Context, container, name string) error

	// EnsureContainer creates the container if it does not exist.
	EnsureContainer(ctx context.Context, container string) error

	// ContainerExists reports whether the container exists.
	ContainerExists(ctx context.Context, container string) (bool, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
