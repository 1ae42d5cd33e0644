package imaging_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBoundedSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"small image untouched", 800, 600, 800, 600},
		{"exact edge untouched", 1200, 900, 1200, 900},
		{"landscape", 2400, 1600, 1200, 800},
		{"portrait", 1000, 3000, 400, 1200},
		{"extreme ratio keeps one pixel", 6000, 2, 1200, 1},
		{"empty", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := imaging.BoundedSize(tt.w, tt.h, 1200)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestJPEGEncoder_DownscalesLargeImage(t *testing.T) {
	enc := imaging.NewJPEGEncoder(100, 80)

	out, err := enc.EncodeBounded(bytes.NewReader(pngBytes(t, 400, 200)))

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", out.Type)
	assert.Equal(t, 100, out.Width)
	assert.Equal(t, 50, out.Height)

	decoded, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestJPEGEncoder_KeepsSmallImageSize(t *testing.T) {
	enc := imaging.NewJPEGEncoder(0, 0)
	assert.Equal(t, imaging.DefaultMaxEdge, enc.MaxEdge)
	assert.Equal(t, imaging.DefaultQuality, enc.Quality)

	out, err := enc.EncodeBounded(bytes.NewReader(pngBytes(t, 64, 48)))

	require.NoError(t, err)
	assert.Equal(t, 64, out.Width)
	assert.Equal(t, 48, out.Height)
}

func TestJPEGEncoder_RejectsNonImage(t *testing.T) {
	enc := imaging.NewJPEGEncoder(0, 0)

	_, err := enc.EncodeBounded(strings.NewReader("definitely not an image"))

	assert.ErrorIs(t, err, imaging.ErrDecode)
}

// pngHeader returns a PNG signature plus an IHDR chunk declaring a w×h
// grayscale canvas. It carries no pixel data.
func pngHeader(w, h uint32) []byte {
	var ihdr bytes.Buffer
	ihdr.WriteString("IHDR")
	_ = binary.Write(&ihdr, binary.BigEndian, w)
	_ = binary.Write(&ihdr, binary.BigEndian, h)
	ihdr.Write([]byte{8, 0, 0, 0, 0}) // 8-bit grayscale, no interlace

	var out bytes.Buffer
	out.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&out, binary.BigEndian, uint32(ihdr.Len()-4))
	out.Write(ihdr.Bytes())
	_ = binary.Write(&out, binary.BigEndian, crc32.ChecksumIEEE(ihdr.Bytes()))
	return out.Bytes()
}

func TestJPEGEncoder_RejectsHugeDeclaredCanvas(t *testing.T) {
	enc := imaging.NewJPEGEncoder(0, 0)
	assert.Equal(t, int64(imaging.DefaultMaxPixels), enc.MaxPixels)

	_, err := enc.EncodeBounded(bytes.NewReader(pngHeader(12000, 12000)))

	assert.ErrorIs(t, err, imaging.ErrTooManyPixels)
	assert.NotErrorIs(t, err, imaging.ErrDecode)
}

func TestJPEGEncoder_PixelBudget(t *testing.T) {
	enc := imaging.NewJPEGEncoder(100, 80)
	enc.MaxPixels = 400 * 200

	out, err := enc.EncodeBounded(bytes.NewReader(pngBytes(t, 400, 200)))
	require.NoError(t, err, "an image exactly at the budget is accepted")
	assert.Equal(t, 100, out.Width)

	enc.MaxPixels = 400*200 - 1
	_, err = enc.EncodeBounded(bytes.NewReader(pngBytes(t, 400, 200)))
	assert.ErrorIs(t, err, imaging.ErrTooManyPixels)
}
