// Package imaging bounds and re-encodes images before they are stored in a form.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	DefaultMaxEdge   = 1200
	DefaultQuality   = 80
	DefaultMaxPixels = 40_000_000
)

var (
	ErrDecode        = errors.New("imaging: unsupported or corrupt image")
	ErrTooManyPixels = errors.New("imaging: image dimensions exceed the pixel budget")
)

// Encoded is the result of bounding an image.
type Encoded struct {
	Data   []byte
	Type   string
	Width  int
	Height int
}

// Encoder turns an arbitrary image into a size-bounded payload.
type Encoder interface {
	EncodeBounded(r io.Reader) (Encoded, error)
}

// JPEGEncoder scales images so the long edge is at most MaxEdge pixels and
// re-encodes them as JPEG at Quality. Images declaring more than MaxPixels
// pixels are rejected before any pixel data is decoded.
type JPEGEncoder struct {
	MaxEdge   int
	Quality   int
	MaxPixels int64
}

func NewJPEGEncoder(maxEdge, quality int) *JPEGEncoder {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxEdge
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &JPEGEncoder{MaxEdge: maxEdge, Quality: quality, MaxPixels: DefaultMaxPixels}
}

func (e *JPEGEncoder) EncodeBounded(r io.Reader) (Encoded, error) {
	// The header is read through a tee so the full decode can replay it.
	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &header))
	if err != nil {
		return Encoded{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := e.checkPixels(cfg.Width, cfg.Height); err != nil {
		return Encoded{}, err
	}

	src, _, err := image.Decode(io.MultiReader(&header, r))
	if err != nil {
		return Encoded{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := src.Bounds()
	w, h := BoundedSize(b.Dx(), b.Dy(), e.MaxEdge)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// JPEG has no alpha; paint white under transparent areas.
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: e.Quality}); err != nil {
		return Encoded{}, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return Encoded{
		Data:   buf.Bytes(),
		Type:   "image/jpeg",
		Width:  w,
		Height: h,
	}, nil
}

func (e *JPEGEncoder) checkPixels(w, h int) error {
	limit := e.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	if int64(w)*int64(h) > limit {
		return fmt.Errorf("%w: %dx%d", ErrTooManyPixels, w, h)
	}
	return nil
}

// BoundedSize scales (w, h) down proportionally so neither side exceeds maxEdge.
func BoundedSize(w, h, maxEdge int) (int, int) {
	long := w
	if h > long {
		long = h
	}
	if long <= maxEdge || long == 0 {
		return w, h
	}
	nw := w * maxEdge / long
	nh := h * maxEdge / long
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
