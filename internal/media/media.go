// Package media uploads form attachments to a hosting service.
package media

import (
	"context"
	"errors"
)

var ErrUploadFailed = errors.New("media: upload failed")

// Object is one file to upload.
type Object struct {
	// Namespace groups the files of one submission, e.g. "submissions/<id>".
	Namespace   string
	Name        string
	ContentType string
	Data        []byte
}

// Host stores an object and returns a public URL for it.
type Host interface {
	Upload(ctx context.Context, obj Object) (string, error)
}
