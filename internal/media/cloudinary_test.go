package media_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/media"
)

func TestCloudinaryClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "unsigned_intake", r.FormValue("upload_preset"))
		assert.Equal(t, "submissions/abc", r.FormValue("folder"))
		assert.Empty(t, r.FormValue("signature"))

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, []byte("png-bytes"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/v1/logo.png","public_id":"logo"}`))
	}))
	defer server.Close()

	client, err := media.NewCloudinaryClient(server.URL, "demo", "unsigned_intake")
	require.NoError(t, err)

	url, err := client.Upload(context.Background(), media.Object{
		Namespace:   "submissions/abc",
		Name:        "logo.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/logo.png", url)
}

func TestCloudinaryClient_UploadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer server.Close()

	client, err := media.NewCloudinaryClient(server.URL+"/", "demo", "missing")
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), media.Object{Name: "a.png", Data: []byte("x")})

	assert.ErrorIs(t, err, media.ErrUploadFailed)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestCloudinaryClient_NonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	client, err := media.NewCloudinaryClient(server.URL, "demo", "preset")
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), media.Object{Name: "a.png", Data: []byte("x")})

	assert.ErrorIs(t, err, media.ErrUploadFailed)
}
