package storage

import (
	"Shelved/internal/apperr"
	"Shelved/internal/models"
	"context"
	"fmt"
	"time"
)

// UploadTarget is what a client needs to push file bytes directly to the
// backing object store.
type UploadTarget struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Fields    map[string]string `json:"fields,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// ObjectStorage is the disk collaborator boundary. Byte transfer, cloud copy
// and delete happen here, never inside a directory transaction.
type ObjectStorage interface {
	GenerateUploadTarget(ctx context.Context, objectKey string, expiry time.Duration) (*UploadTarget, error)
	CopyObject(ctx context.Context, sourceKey, destKey string) error
	DeleteObject(ctx context.Context, objectKey string) error
}

// Factory resolves the ObjectStorage implementation for a disk.
type Factory interface {
	ForDisk(disk *models.Disk) (ObjectStorage, error)
}

type factoryImpl struct{}

func NewFactory() Factory {
	return &factoryImpl{}
}

func (f *factoryImpl) ForDisk(disk *models.Disk) (ObjectStorage, error) {
	switch disk.Type {
	case models.DiskTypeS3:
		return NewS3Storage(disk)
	case models.DiskTypeWeb3, models.DiskTypeCanister:
		return nil, fmt.Errorf("disk type %q has no object storage client: %w", disk.Type, apperr.ErrStorageBackend)
	default:
		return nil, fmt.Errorf("unknown disk type %q: %w", disk.Type, apperr.ErrStorageBackend)
	}
}
