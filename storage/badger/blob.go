package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/evidex/core"
	"github.com/poiesic/evidex/storage"
)

const defaultContentType = "application/octet-stream"

// BlobRepository implements storage.BlobRepository for BadgerDB.
type BlobRepository struct {
	backend *Backend
}

var _ storage.BlobRepository = (*BlobRepository)(nil)

// NewBlobRepository creates a new BlobRepository.
//
// Returns storage.BlobRepository interface to enforce abstraction.
func NewBlobRepository(backend *Backend) (storage.BlobRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &BlobRepository{backend: backend}, nil
}

// PutBlob stores content under container/name, overwriting any existing
// blob. The container marker is written in the same transaction, so the
// container always exists after a successful upload.
func (r *BlobRepository) PutBlob(ctx context.Context, container, name string, content []byte, opts storage.PutOptions) (*core.BlobInfo, error) {
	contentType := opts.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	info := &core.BlobInfo{
		Container:   container,
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(content)),
		ETag:        core.ContentETag(content),
		Metadata:    opts.Metadata,
		UploadedAt:  time.Now().UTC(),
	}
	if err := core.ValidateBlobInfo(info); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeContainerKey(container), []byte{1}); err != nil {
			return err
		}
		if err := tx.Set(makeBlobContentKey(container, name), content); err != nil {
			return err
		}
		if err := tx.Set(makeBlobInfoKey(container, name), storage.MarshalBlobInfo(info)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	r.backend.logger.Debug("stored blob", "container", container, "name", name, "size", info.Size)
	return info, nil
}

// GetBlob retrieves a blob's content and info.
func (r *BlobRepository) GetBlob(ctx context.Context, container, name string) ([]byte, *core.BlobInfo, error) {
	var content []byte
	var info *core.BlobInfo

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeBlobContentKey(container, name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s/%s", storage.ErrNotFound, container, name)
			}
			return err
		}
		content, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		info, err = r.readInfo(tx, container, name)
		return err
	}, false)
	if err != nil {
		return nil, nil, err
	}

	return content, info, nil
}

// GetBlobInfo retrieves only a blob's info.
func (r *BlobRepository) GetBlobInfo(ctx context.Context, container, name string) (*core.BlobInfo, error) {
	var info *core.BlobInfo

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		info, err = r.readInfo(tx, container, name)
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	return info, nil
}

// ListBlobs returns the infos of all blobs in a container, in name order.
func (r *BlobRepository) ListBlobs(ctx context.Context, container string) ([]*core.BlobInfo, error) {
	exists, err := r.ContainerExists(ctx, container)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", storage.ErrContainerNotFound, container)
	}

	var infos []*core.BlobInfo
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeBlobInfoScanPrefix(container)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			data, err := iter.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			info, err := storage.UnmarshalBlobInfo(data)
			if err != nil {
				return fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
			}
			infos = append(infos, info)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return infos, nil
}

// DeleteBlob removes a blob's content and info.
func (r *BlobRepository) DeleteBlob(ctx context.Context, container, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeBlobInfoKey(container, name)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s/%s", storage.ErrNotFound, container, name)
			}
			return err
		}
		if err := tx.Delete(makeBlobContentKey(container, name)); err != nil {
			return err
		}
		if err := tx.Delete(makeBlobInfoKey(container, name)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// EnsureContainer creates the container marker if it does not exist.
func (r *BlobRepository) EnsureContainer(ctx context.Context, container string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeContainerKey(container), []byte{1}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ContainerExists reports whether the container marker is present.
func (r *BlobRepository) ContainerExists(ctx context.Context, container string) (bool, error) {
	exists := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeContainerKey(container))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		exists = true
		return nil
	}, false)
	return exists, err
}

// Close closes the repository. The shared backend is closed by its owner.
func (r *BlobRepository) Close() error {
	return nil
}

func (r *BlobRepository) readInfo(tx *badger.Txn, container, name string) (*core.BlobInfo, error) {
	item, err := tx.Get(makeBlobInfoKey(container, name))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", storage.ErrNotFound, container, name)
		}
		return nil, err
	}

	data, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	info, err := storage.UnmarshalBlobInfo(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}
	return info, nil
}
