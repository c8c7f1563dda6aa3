// Package objectstore is the storage backend of the demo browser: a thin
// wrapper around an S3-compatible endpoint.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aquakit/aquakit/config"
)

// Object is one listed entry.
type Object struct {
	Key          string
	Size         int64
	LastModified string
}

type Service struct {
	client *minio.Client
	bucket string
	prefix string
}

func New(cfg config.StoreConfig) (*Service, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Region: cfg.Region,
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return &Service{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// ListBatch returns up to batchSize objects with keys after startAfter.
// startAfter is a key as returned by a previous batch, relative to the
// configured prefix; the prefix is re-applied before it reaches the store,
// which compares against full object keys.
func (s *Service) ListBatch(ctx context.Context, startAfter string, batchSize int) ([]Object, error) {
	opts := minio.ListObjectsOptions{
		MaxKeys:   batchSize,
		Prefix:    s.prefix,
		Recursive: true,
	}
	if startAfter != "" {
		opts.StartAfter = s.fullKey(startAfter)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objectCh := s.client.ListObjects(ctx, s.bucket, opts)
	objects := make([]Object, 0, batchSize)

	for obj := range objectCh {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, Object{
			Key:          s.trimKey(obj.Key),
			Size:         obj.Size,
			LastModified: obj.LastModified.Format("2006-01-02 15:04:05"),
		})
		if len(objects) >= batchSize {
			cancel()
			break
		}
	}

	return objects, nil
}

// fullKey maps a prefix-relative key back to the full object key stored
// in the bucket. trimKey is its inverse for keys coming off the wire.
func (s *Service) fullKey(key string) string {
	return s.prefix + key
}

func (s *Service) trimKey(key string) string {
	return strings.TrimPrefix(key, s.prefix)
}

// Put uploads an object with the given content type.
func (s *Service) Put(ctx context.Context, key string, r io.Reader, length int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.prefix+key, r, length,
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Remove deletes an object.
func (s *Service) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, s.prefix+key, minio.RemoveObjectOptions{})
}

// Get opens an object for reading.
func (s *Service) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, s.prefix+key, minio.GetObjectOptions{})
}
