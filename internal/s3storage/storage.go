package s3storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"client-intake-backend/internal/config"
	"client-intake-backend/internal/media"
)

// Storage uploads submission media to an S3-compatible bucket.
type Storage struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
}

// New creates a MinIO client from the Config.
func New(cfg *config.Config) (*Storage, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = client.EndpointURL().String() + "/" + cfg.S3Bucket
	}
	return &Storage{
		client:    client,
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		publicURL: publicURL,
	}, nil
}

// EnsureBucket makes sure the bucket exists before use.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

func (s *Storage) Upload(ctx context.Context, obj media.Object) (string, error) {
	key := path.Join(obj.Namespace, uuid.NewString()+"-"+path.Base(obj.Name))
	opts := minio.PutObjectOptions{ContentType: obj.ContentType}
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(obj.Data), int64(len(obj.Data)), opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", media.ErrUploadFailed, err)
	}
	return s.publicURL + "/" + key, nil
}
