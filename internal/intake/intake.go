// Package intake validates selected files and turns them into inline assets.
package intake

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/vincent-petithory/dataurl"

	"client-intake-backend/internal/imaging"
	"client-intake-backend/internal/models"
)

const DefaultMaxFileBytes = 1 << 20 // 1 MiB

var (
	ErrTooManyFiles  = errors.New("intake: too many files")
	ErrFileTooLarge  = errors.New("intake: file exceeds the size limit")
	ErrNotAnImage    = errors.New("intake: file is not an image")
	ErrInvalidData   = errors.New("intake: invalid data url")
	ErrNothingToRead = errors.New("intake: no files selected")
)

// Upload is one selected file.
type Upload struct {
	Name string
	Type string
	Size int64
	Open func() (io.ReadCloser, error)
}

// FromFileHeaders adapts multipart file headers.
func FromFileHeaders(headers []*multipart.FileHeader) []Upload {
	uploads := make([]Upload, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		uploads = append(uploads, Upload{
			Name: fh.Filename,
			Type: fh.Header.Get("Content-Type"),
			Size: fh.Size,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	return uploads
}

// FileError is a per-file rejection. It does not abort the batch.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

type Config struct {
	// Compress routes images through the encoder instead of enforcing MaxFileBytes.
	Compress     bool
	MaxFileBytes int64
}

type Intake struct {
	cfg     Config
	encoder imaging.Encoder
	logger  *slog.Logger
}

func New(cfg Config, encoder imaging.Encoder, logger *slog.Logger) *Intake {
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = DefaultMaxFileBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Intake{cfg: cfg, encoder: encoder, logger: logger}
}

// Process converts a batch of uploads into assets. remaining is how many more
// files the form accepts; a larger batch is rejected before anything is read.
func (in *Intake) Process(ctx context.Context, uploads []Upload, remaining int) ([]models.FileAsset, []FileError, error) {
	if len(uploads) == 0 {
		return nil, nil, ErrNothingToRead
	}
	if len(uploads) > remaining {
		return nil, nil, fmt.Errorf("%w: %d selected, %d allowed", ErrTooManyFiles, len(uploads), remaining)
	}

	assets := make([]models.FileAsset, 0, len(uploads))
	var rejected []FileError
	for _, u := range uploads {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		asset, err := in.processOne(u)
		if err != nil {
			in.logger.Warn("file rejected", "file", u.Name, "error", err)
			rejected = append(rejected, FileError{Name: u.Name, Err: err})
			continue
		}
		assets = append(assets, asset)
	}
	return assets, rejected, nil
}

func (in *Intake) processOne(u Upload) (models.FileAsset, error) {
	if !in.cfg.Compress && u.Size > in.cfg.MaxFileBytes {
		return models.FileAsset{}, ErrFileTooLarge
	}

	src, err := u.Open()
	if err != nil {
		return models.FileAsset{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	if in.cfg.Compress {
		enc, err := in.encoder.EncodeBounded(src)
		if err != nil {
			return models.FileAsset{}, err
		}
		return models.FileAsset{
			Name: u.Name,
			Size: int64(len(enc.Data)),
			Type: enc.Type,
			Data: EncodeDataURL(enc.Type, enc.Data),
		}, nil
	}

	// Read one byte past the limit so a lying Size header is still caught.
	data, err := io.ReadAll(io.LimitReader(src, in.cfg.MaxFileBytes+1))
	if err != nil {
		return models.FileAsset{}, fmt.Errorf("failed to read file data: %w", err)
	}
	if int64(len(data)) > in.cfg.MaxFileBytes {
		return models.FileAsset{}, ErrFileTooLarge
	}

	mimeType := u.Type
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return models.FileAsset{}, ErrNotAnImage
	}

	return models.FileAsset{
		Name: u.Name,
		Size: int64(len(data)),
		Type: mimeType,
		Data: EncodeDataURL(mimeType, data),
	}, nil
}

// EncodeDataURL embeds data as a base64 data URL.
func EncodeDataURL(mimeType string, data []byte) string {
	return dataurl.New(data, mimeType).String()
}

// DecodeDataURL returns the bytes and bare MIME type embedded in a data URL.
func DecodeDataURL(s string) ([]byte, string, error) {
	du, err := dataurl.DecodeString(s)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return du.Data, du.MediaType.ContentType(), nil
}

// ReaderFrom builds an Upload from in-memory bytes.
func ReaderFrom(name, mimeType string, data []byte) Upload {
	return Upload{
		Name: name,
		Type: mimeType,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}
