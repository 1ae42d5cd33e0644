package database_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/database"
	"client-intake-backend/internal/ratelimit"
)

// newTestClient connects to TEST_DATABASE_URL and applies the migrations.
func newTestClient(t *testing.T) *database.DatabaseClient {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	migrator, err := database.NewMigrator(dbURL, nil)
	require.NoError(t, err)
	defer migrator.Close()
	require.NoError(t, migrator.Run(context.Background()))

	client, err := database.NewDatabaseClient(dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSlots_RoundTripThroughLimiter(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	scope := "test-" + uuid.NewString()
	limiter := ratelimit.New(client)

	d, err := limiter.CanSubmit(ctx, scope, "maria@example.com")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	require.NoError(t, limiter.RecordSubmission(ctx, scope, "maria@example.com"))
	require.NoError(t, limiter.RecordSubmission(ctx, scope, "maria@example.com"))

	d, err = limiter.CanSubmit(ctx, scope, "maria@example.com")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestSubmissions_CreateAndList(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	email := uuid.NewString() + "@example.com"

	sub := &database.Submission{
		ClientID:       "browser-1",
		Email:          email,
		Name:           "Maria",
		FileCount:      3,
		UploadedCount:  2,
		FailedUploads:  1,
		AdminEmailSent: true,
		ErrorMessage:   sql.NullString{String: "customer email: boom", Valid: true},
	}
	require.NoError(t, client.CreateSubmission(ctx, sub))
	assert.NotEqual(t, uuid.Nil, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())

	list, err := client.ListSubmissionsByEmail(ctx, email)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sub.ID, list[0].ID)
	assert.Equal(t, 1, list[0].FailedUploads)
	assert.False(t, list[0].CustomerEmailSent)
	assert.Equal(t, "customer email: boom", list[0].ErrorMessage.String)
}
