package intake_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/imaging"
	"client-intake-backend/internal/intake"
)

func smallPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func legacy() *intake.Intake {
	return intake.New(intake.Config{}, nil, nil)
}

func TestProcess_RoundTrip(t *testing.T) {
	data := smallPNG(t)

	assets, rejected, err := legacy().Process(context.Background(), []intake.Upload{
		intake.ReaderFrom("logo.png", "image/png", data),
	}, 15)

	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.Len(t, assets, 1)
	assert.Equal(t, "logo.png", assets[0].Name)
	assert.Equal(t, int64(len(data)), assets[0].Size)
	assert.Equal(t, "image/png", assets[0].Type)

	decoded, mimeType, err := intake.DecodeDataURL(assets[0].Data)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, data, decoded)
}

func TestProcess_DetectsMissingContentType(t *testing.T) {
	assets, _, err := legacy().Process(context.Background(), []intake.Upload{
		intake.ReaderFrom("logo", "", smallPNG(t)),
	}, 1)

	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "image/png", assets[0].Type)
}

func TestProcess_TooManyFilesRejectsBatch(t *testing.T) {
	uploads := []intake.Upload{
		intake.ReaderFrom("a.png", "image/png", smallPNG(t)),
		intake.ReaderFrom("b.png", "image/png", smallPNG(t)),
	}

	assets, rejected, err := legacy().Process(context.Background(), uploads, 1)

	assert.ErrorIs(t, err, intake.ErrTooManyFiles)
	assert.Nil(t, assets)
	assert.Nil(t, rejected)
}

func TestProcess_NothingSelected(t *testing.T) {
	_, _, err := legacy().Process(context.Background(), nil, 15)
	assert.ErrorIs(t, err, intake.ErrNothingToRead)
}

func TestProcess_OversizeFileIsSkipped(t *testing.T) {
	big := make([]byte, intake.DefaultMaxFileBytes+1)
	uploads := []intake.Upload{
		intake.ReaderFrom("big.png", "image/png", big),
		intake.ReaderFrom("ok.png", "image/png", smallPNG(t)),
	}

	assets, rejected, err := legacy().Process(context.Background(), uploads, 15)

	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "ok.png", assets[0].Name)
	require.Len(t, rejected, 1)
	assert.Equal(t, "big.png", rejected[0].Name)
	assert.ErrorIs(t, rejected[0].Err, intake.ErrFileTooLarge)
}

func TestProcess_LyingSizeIsCaught(t *testing.T) {
	big := make([]byte, 2048)
	upload := intake.Upload{
		Name: "liar.png",
		Type: "image/png",
		Size: 10,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(big)), nil },
	}
	in := intake.New(intake.Config{MaxFileBytes: 1024}, nil, nil)

	_, rejected, err := in.Process(context.Background(), []intake.Upload{upload}, 1)

	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0].Err, intake.ErrFileTooLarge)
}

func TestProcess_RejectsNonImage(t *testing.T) {
	_, rejected, err := legacy().Process(context.Background(), []intake.Upload{
		intake.ReaderFrom("notes.txt", "text/plain", []byte("hello")),
	}, 1)

	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0].Err, intake.ErrNotAnImage)
}

type failingEncoder struct{}

func (failingEncoder) EncodeBounded(io.Reader) (imaging.Encoded, error) {
	return imaging.Encoded{}, imaging.ErrDecode
}

func TestProcess_CompressMode(t *testing.T) {
	in := intake.New(intake.Config{Compress: true}, imaging.NewJPEGEncoder(2, 80), nil)
	big := make([]byte, 3<<20)

	assets, rejected, err := in.Process(context.Background(), []intake.Upload{
		intake.ReaderFrom("photo.png", "image/png", smallPNG(t)),
		intake.ReaderFrom("huge.bin", "image/png", big),
	}, 2)

	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "image/jpeg", assets[0].Type)

	data, mimeType, err := intake.DecodeDataURL(assets[0].Data)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, 2)
	assert.LessOrEqual(t, cfg.Height, 2)

	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0].Err, imaging.ErrDecode, "compress mode skips undecodable files, not large ones")
}

func TestProcess_CompressRejectsOversizedCanvas(t *testing.T) {
	enc := imaging.NewJPEGEncoder(0, 80)
	enc.MaxPixels = 10
	in := intake.New(intake.Config{Compress: true}, enc, nil)

	var tiny bytes.Buffer
	require.NoError(t, png.Encode(&tiny, image.NewGray(image.Rect(0, 0, 2, 2))))

	assets, rejected, err := in.Process(context.Background(), []intake.Upload{
		intake.ReaderFrom("canvas.png", "image/png", smallPNG(t)),
		intake.ReaderFrom("ok.png", "image/png", tiny.Bytes()),
	}, 2)

	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "ok.png", assets[0].Name)
	require.Len(t, rejected, 1)
	assert.Equal(t, "canvas.png", rejected[0].Name)
	assert.ErrorIs(t, rejected[0].Err, imaging.ErrTooManyPixels)
}

func TestProcess_CompressFailureSkipsOnlyThatFile(t *testing.T) {
	in := intake.New(intake.Config{Compress: true}, failingEncoder{}, nil)

	assets, rejected, err := in.Process(context.Background(), []intake.Upload{
		intake.ReaderFrom("a.png", "image/png", smallPNG(t)),
		intake.ReaderFrom("b.png", "image/png", smallPNG(t)),
	}, 2)

	require.NoError(t, err)
	assert.Empty(t, assets)
	assert.Len(t, rejected, 2)
}

func TestProcess_OpenFailure(t *testing.T) {
	upload := intake.Upload{
		Name: "gone.png",
		Open: func() (io.ReadCloser, error) { return nil, errors.New("disk on fire") },
	}

	_, rejected, err := legacy().Process(context.Background(), []intake.Upload{upload}, 1)

	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0].Error(), "gone.png")
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	for _, s := range []string{"", "http://example.com/a.png", "data:image/png;base64,%%%"} {
		_, _, err := intake.DecodeDataURL(s)
		assert.ErrorIs(t, err, intake.ErrInvalidData, s)
	}
}

func TestDecodeDataURL_ParamsAndPlainPayload(t *testing.T) {
	data, mimeType, err := intake.DecodeDataURL("data:image/svg+xml;charset=utf-8,%3Csvg%2F%3E")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", mimeType)
	assert.Equal(t, []byte("<svg/>"), data)

	encoded := intake.EncodeDataURL("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.True(t, strings.HasPrefix(encoded, "data:image/png;base64,"), encoded)
	data, mimeType, err = intake.DecodeDataURL(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}
