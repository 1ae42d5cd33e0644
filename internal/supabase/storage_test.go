package supabase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"

	"client-intake-backend/internal/config"
	"client-intake-backend/internal/media"
	"client-intake-backend/internal/supabase"
)

func newStorageClient(baseURL string) *supabase.StorageClient {
	client := &supabase.Client{
		Supabase: &supa.Client{Storage: storage.NewClient(baseURL+"/storage/v1", "service-key", nil)},
		Config:   &config.Config{SupabaseURL: baseURL + "/"},
	}
	return supabase.NewStorageClient(client, "intake-media")
}

func TestStorageClient_PublicURL(t *testing.T) {
	s := newStorageClient("https://abc.supabase.co")

	got := s.PublicURL("submissions/123/logo.png")

	assert.Equal(t, "https://abc.supabase.co/storage/v1/object/public/intake-media/submissions/123/logo.png", got)
}

func TestStorageClient_Upload(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Key":"intake-media/submissions/123/logo.png"}`))
	}))
	defer server.Close()

	s := newStorageClient(server.URL)

	url, err := s.Upload(context.Background(), media.Object{
		Namespace:   "submissions/123",
		Name:        "logo.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/intake-media/submissions/123/"), gotPath)
	assert.True(t, strings.HasSuffix(gotPath, "-logo.png"), gotPath)
	assert.True(t, strings.HasPrefix(url, server.URL+"/storage/v1/object/public/intake-media/submissions/123/"), url)
}
