package storage

import (
	"Shelved/internal/models"
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStorage records operations instead of performing them. Used by tests
// and as a stand-in for disks without a reachable backend.
type MemoryStorage struct {
	mu      sync.Mutex
	Objects map[string]bool
	Copies  [][2]string
	Deletes []string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Objects: make(map[string]bool)}
}

func (m *MemoryStorage) GenerateUploadTarget(ctx context.Context, objectKey string, expiry time.Duration) (*UploadTarget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[objectKey] = true
	return &UploadTarget{
		URL:       fmt.Sprintf("memory://upload/%s", objectKey),
		Method:    "PUT",
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (m *MemoryStorage) CopyObject(ctx context.Context, sourceKey, destKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Copies = append(m.Copies, [2]string{sourceKey, destKey})
	m.Objects[destKey] = true
	return nil
}

func (m *MemoryStorage) DeleteObject(ctx context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deletes = append(m.Deletes, objectKey)
	delete(m.Objects, objectKey)
	return nil
}

// CopiedPairs snapshots the recorded copy operations.
func (m *MemoryStorage) CopiedPairs() [][2]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][2]string, len(m.Copies))
	copy(out, m.Copies)
	return out
}

// DeletedKeys snapshots the recorded delete operations.
func (m *MemoryStorage) DeletedKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Deletes))
	copy(out, m.Deletes)
	return out
}

// MemoryFactory hands every disk the same MemoryStorage.
type MemoryFactory struct {
	Storage *MemoryStorage
}

func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{Storage: NewMemoryStorage()}
}

func (f *MemoryFactory) ForDisk(disk *models.Disk) (ObjectStorage, error) {
	return f.Storage, nil
}
