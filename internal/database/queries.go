package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Submission is the server-side audit row of one relayed intake form.
type Submission struct {
	ID                uuid.UUID      `json:"id"`
	ClientID          string         `json:"client_id"`
	Email             string         `json:"email"`
	Name              string         `json:"name"`
	FileCount         int            `json:"file_count"`
	UploadedCount     int            `json:"uploaded_count"`
	FailedUploads     int            `json:"failed_uploads"`
	AdminEmailSent    bool           `json:"admin_email_sent"`
	CustomerEmailSent bool           `json:"customer_email_sent"`
	ErrorMessage      sql.NullString `json:"error_message,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}
