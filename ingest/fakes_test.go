package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/poiesic/evidex/core"
	"github.com/poiesic/evidex/storage"
)

// fakeBlobStore is a minimal in-memory storage.BlobRepository for trigger
// tests.
type fakeBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	infos map[string]*core.BlobInfo
}

var _ storage.BlobRepository = (*fakeBlobStore)(nil)

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		blobs: make(map[string][]byte),
		infos: make(map[string]*core.BlobInfo),
	}
}

func blobKey(container, name string) string {
	return fmt.Sprintf("%s/%s", container, name)
}

func (f *fakeBlobStore) put(container, name string, content []byte, contentType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := blobKey(container, name)
	f.blobs[key] = content
	f.infos[key] = &core.BlobInfo{
		Container:   container,
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(content)),
		ETag:        core.ContentETag(content),
		UploadedAt:  time.Now().UTC(),
	}
}

func (f *fakeBlobStore) PutBlob(ctx context.Context, container, name string, content []byte, opts storage.PutOptions) (*core.BlobInfo, error) {
	f.put(container, name, content, opts.ContentType)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.infos[blobKey(container, name)], nil
}

func (f *fakeBlobStore) GetBlob(ctx context.Context, container, name string) ([]byte, *core.BlobInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := blobKey(container, name)
	content, ok := f.blobs[key]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	return content, f.infos[key], nil
}

func (f *fakeBlobStore) GetBlobInfo(ctx context.Context, container, name string) (*core.BlobInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.infos[blobKey(container, name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", storage.ErrNotFound, container, name)
	}
	return info, nil
}

func (f *fakeBlobStore) ListBlobs(ctx context.Context, container string) ([]*core.BlobInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var infos []*core.BlobInfo
	for _, info := range f.infos {
		if info.Container == container {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

func (f *fakeBlobStore) DeleteBlob(ctx context.Context, container, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := blobKey(container, name)
	if _, ok := f.blobs[key]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	delete(f.blobs, key)
	delete(f.infos, key)
	return nil
}

func (f *fakeBlobStore) EnsureContainer(ctx context.Context, container string) error {
	return nil
}

func (f *fakeBlobStore) ContainerExists(ctx context.Context, container string) (bool, error) {
	return true, nil
}

func (f *fakeBlobStore) Close() error { return nil }
