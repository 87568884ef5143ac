package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"event-portal-backend/internal/cache"
	"event-portal-backend/internal/config"
	apperrors "event-portal-backend/internal/errors"
)

// ObjectBackend stores files in an S3-compatible bucket. Each distinct
// path obtains a reusable object handle through the handle cache before
// the byte read or write is issued.
type ObjectBackend struct {
	client  *minio.Client
	bucket  string
	handles *cache.Cache[*objectHandle]
}

// NewObjectBackend connects the S3-compatible client from configuration.
func NewObjectBackend(cfg *config.Config) (*ObjectBackend, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, &apperrors.ConfigurationError{
			Message: fmt.Sprintf("object store client: %v", err),
		}
	}

	return &ObjectBackend{
		client:  client,
		bucket:  cfg.FSBucket,
		handles: cache.New[*objectHandle](),
	}, nil
}

// objectHandle binds the client to one bucket key.
type objectHandle struct {
	client *minio.Client
	bucket string
	key    string
}

func (h *objectHandle) get() ([]byte, error) {
	obj, err := h.client.GetObject(context.Background(), h.bucket, h.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (h *objectHandle) put(content []byte) error {
	_, err := h.client.PutObject(context.Background(), h.bucket, h.key,
		bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{})
	return err
}

func (b *ObjectBackend) handle(path string) *objectHandle {
	h, _ := b.handles.GetOrFill(path, func() (*objectHandle, bool) {
		return &objectHandle{client: b.client, bucket: b.bucket, key: path}, true
	})
	return h
}

// Read fetches the object bytes.
func (b *ObjectBackend) Read(path string) ([]byte, error) {
	content, err := b.handle(path).get()
	if err != nil {
		return nil, &apperrors.StorageFault{Op: "read", Path: path, Err: err}
	}
	return content, nil
}

// Write uploads the object bytes. Failed writes are not retried.
func (b *ObjectBackend) Write(path string, content []byte) error {
	if err := b.handle(path).put(content); err != nil {
		return &apperrors.StorageFault{Op: "write", Path: path, Err: err}
	}
	return nil
}
