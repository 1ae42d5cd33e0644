package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/database"
)

type fakeLister struct {
	subs  []database.Submission
	err   error
	email string
}

func (f *fakeLister) ListSubmissionsByEmail(_ context.Context, email string) ([]database.Submission, error) {
	f.email = email
	return f.subs, f.err
}

func TestListSubmissions(t *testing.T) {
	id := uuid.New()
	lister := &fakeLister{subs: []database.Submission{{
		ID:                id,
		Email:             "maria@example.com",
		Name:              "Maria",
		FileCount:         3,
		UploadedCount:     2,
		AdminEmailSent:    true,
		CustomerEmailSent: false,
		ErrorMessage:      sql.NullString{String: "customer email: timeout", Valid: true},
		CreatedAt:         time.Date(2024, 5, 1, 6, 30, 0, 0, time.UTC),
	}}}
	var out bytes.Buffer

	err := listSubmissions(context.Background(), lister, "maria@example.com", &out)

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", lister.email)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "CREATED"))
	assert.Contains(t, lines[1], "2024-05-01T06:30:00Z")
	assert.Contains(t, lines[1], id.String())
	assert.Contains(t, lines[1], "2/3")
	assert.Contains(t, lines[1], "customer email: timeout")
}

func TestListSubmissions_Empty(t *testing.T) {
	var out bytes.Buffer

	err := listSubmissions(context.Background(), &fakeLister{}, "nobody@example.com", &out)

	require.NoError(t, err)
	assert.Equal(t, "no submissions for nobody@example.com\n", out.String())
}

func TestListSubmissions_Error(t *testing.T) {
	boom := errors.New("connection refused")

	err := listSubmissions(context.Background(), &fakeLister{err: boom}, "a@example.com", &bytes.Buffer{})

	assert.ErrorIs(t, err, boom)
}
