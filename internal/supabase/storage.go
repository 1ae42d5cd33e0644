package supabase

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"

	"client-intake-backend/internal/media"
)

// StorageClient uploads submission media to a public Supabase Storage bucket.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

// NewStorageClient reuses the storage client of an initialised Supabase client.
func NewStorageClient(c *Client, bucket string) *StorageClient {
	return &StorageClient{
		client:  c.Supabase.Storage,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(c.Config.SupabaseURL, "/"),
	}
}

// Upload stores the object under {namespace}/{uuid}-{name}.
func (s *StorageClient) Upload(_ context.Context, obj media.Object) (string, error) {
	storagePath := path.Join(obj.Namespace, uuid.NewString()+"-"+path.Base(obj.Name))

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(obj.Data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", media.ErrUploadFailed, err)
	}

	return s.PublicURL(storagePath), nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}
