package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryClient performs unsigned uploads with an upload preset.
type CloudinaryClient struct {
	cld          *cloudinary.Cloudinary
	uploadPreset string
}

// NewCloudinaryClient builds an unsigned client. uploadPrefix overrides the
// API host (e.g. "https://api.cloudinary.com") and may be empty.
func NewCloudinaryClient(uploadPrefix, cloudName, uploadPreset string) (*CloudinaryClient, error) {
	cld, err := cloudinary.NewFromParams(cloudName, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	if uploadPrefix != "" {
		cld.Config.API.UploadPrefix = strings.TrimSuffix(uploadPrefix, "/")
	}
	cld.Config.API.UploadTimeout = 60

	return &CloudinaryClient{cld: cld, uploadPreset: uploadPreset}, nil
}

func (c *CloudinaryClient) Upload(ctx context.Context, obj Object) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(obj.Data), uploader.UploadParams{
		UploadPreset: c.uploadPreset,
		Unsigned:     api.Bool(true),
		Folder:       obj.Namespace,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("%w: empty secure url", ErrUploadFailed)
	}

	return resp.SecureURL, nil
}
