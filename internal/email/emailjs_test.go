package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/email"
)

func TestNewEmailJSClient_RequiresKeys(t *testing.T) {
	_, err := email.NewEmailJSClient(email.EmailJSConfig{PublicKey: "pk"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	_, err = email.NewEmailJSClient(email.EmailJSConfig{ServiceID: "svc"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
}

func TestEmailJSClient_Send(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	client, err := email.NewEmailJSClient(email.EmailJSConfig{
		BaseURL:    server.URL + "/",
		ServiceID:  "svc_1",
		PublicKey:  "pk_1",
		PrivateKey: "sk_1",
	})
	require.NoError(t, err)

	err = client.Send(context.Background(), email.Message{
		Template: "tpl_admin",
		Params:   map[string]string{"name": "Maria"},
	})

	require.NoError(t, err)
	assert.Equal(t, "svc_1", got["service_id"])
	assert.Equal(t, "tpl_admin", got["template_id"])
	assert.Equal(t, "pk_1", got["user_id"])
	assert.Equal(t, "sk_1", got["accessToken"])
	assert.Equal(t, map[string]any{"name": "Maria"}, got["template_params"])
}

func TestEmailJSClient_SendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer server.Close()

	client, err := email.NewEmailJSClient(email.EmailJSConfig{BaseURL: server.URL, ServiceID: "svc", PublicKey: "pk"})
	require.NoError(t, err)

	err = client.Send(context.Background(), email.Message{Template: "nope"})

	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.Contains(t, err.Error(), "template ID is invalid")
}

func TestEmailJSClient_RequiresTemplate(t *testing.T) {
	client, err := email.NewEmailJSClient(email.EmailJSConfig{ServiceID: "svc", PublicKey: "pk"})
	require.NoError(t, err)

	err = client.Send(context.Background(), email.Message{})

	assert.ErrorIs(t, err, email.ErrInvalidMessage)
}

func TestPostmarkClient_Validation(t *testing.T) {
	_, err := email.NewPostmarkClient(email.PostmarkConfig{SenderEmail: "studio@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	_, err = email.NewPostmarkClient(email.PostmarkConfig{ServerToken: "token"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	client, err := email.NewPostmarkClient(email.PostmarkConfig{ServerToken: "token", SenderEmail: "studio@example.com"})
	require.NoError(t, err)

	err = client.Send(context.Background(), email.Message{Template: "admin"})
	assert.ErrorIs(t, err, email.ErrInvalidMessage)
}
