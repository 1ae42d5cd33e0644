package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// DatabaseClient backs the rate-limit slots and the submission audit log.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) GetSlot(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := d.db.QueryRowContext(ctx, `
		SELECT value FROM rate_limit_slots WHERE key = $1
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get slot: %w", err)
	}
	return value, true, nil
}

func (d *DatabaseClient) PutSlot(ctx context.Context, key string, value []byte) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO rate_limit_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to put slot: %w", err)
	}
	return nil
}

func (d *DatabaseClient) CreateSubmission(ctx context.Context, s *Submission) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO submissions (id, client_id, email, name, file_count, uploaded_count, failed_uploads,
			admin_email_sent, customer_email_sent, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, s.ID, s.ClientID, s.Email, s.Name, s.FileCount, s.UploadedCount, s.FailedUploads,
		s.AdminEmailSent, s.CustomerEmailSent, s.ErrorMessage).Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (d *DatabaseClient) ListSubmissionsByEmail(ctx context.Context, email string) ([]Submission, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, client_id, email, name, file_count, uploaded_count, failed_uploads,
			admin_email_sent, customer_email_sent, error_message, created_at
		FROM submissions
		WHERE email = $1
		ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []Submission
	for rows.Next() {
		var s Submission
		err := rows.Scan(
			&s.ID, &s.ClientID, &s.Email, &s.Name, &s.FileCount, &s.UploadedCount, &s.FailedUploads,
			&s.AdminEmailSent, &s.CustomerEmailSent, &s.ErrorMessage, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
