package storage

import (
	"Shelved/internal/apperr"
	"Shelved/internal/models"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Storage talks to any S3-compatible endpoint (AWS, MinIO, R2) through
// minio-go.
type S3Storage struct {
	client *minio.Client
	bucket string
}

func NewS3Storage(disk *models.Disk) (*S3Storage, error) {
	var creds *credentials.Credentials
	if disk.AccessKey == "" {
		creds = credentials.NewIAM("")
	} else {
		creds = credentials.NewStaticV4(disk.AccessKey, disk.SecretKey, "")
	}

	client, err := minio.New(disk.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: disk.UseSSL,
		Region: disk.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client for disk %s: %w", disk.ID, apperr.ErrStorageBackend)
	}

	return &S3Storage{
		client: client,
		bucket: disk.Bucket,
	}, nil
}

func (s *S3Storage) GenerateUploadTarget(ctx context.Context, objectKey string, expiry time.Duration) (*UploadTarget, error) {
	urlValue, err := s.client.PresignedPutObject(ctx, s.bucket, objectKey, expiry)
	if err != nil {
		return nil, fmt.Errorf("presign put for %s: %v: %w", objectKey, err, apperr.ErrStorageBackend)
	}
	return &UploadTarget{
		URL:       urlValue.String(),
		Method:    http.MethodPut,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (s *S3Storage) CopyObject(ctx context.Context, sourceKey, destKey string) error {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: destKey},
		minio.CopySrcOptions{Bucket: s.bucket, Object: sourceKey},
	)
	if err != nil {
		return fmt.Errorf("copy %s -> %s: %v: %w", sourceKey, destKey, err, apperr.ErrStorageBackend)
	}
	return nil
}

func (s *S3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("delete %s: %v: %w", objectKey, err, apperr.ErrStorageBackend)
	}
	return nil
}
