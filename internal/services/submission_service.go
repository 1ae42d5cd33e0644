package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"client-intake-backend/internal/database"
	"client-intake-backend/internal/email"
	"client-intake-backend/internal/intake"
	"client-intake-backend/internal/media"
	"client-intake-backend/internal/models"
	"client-intake-backend/internal/ratelimit"
	"client-intake-backend/internal/wizard"
)

const (
	DefaultCompletionDelay = 2 * time.Second
	DefaultSpamDelay       = 1500 * time.Millisecond
	photoUploadConcurrency = 4
)

// AuditStore records relayed submissions server-side.
type AuditStore interface {
	CreateSubmission(ctx context.Context, s *database.Submission) error
}

type SubmissionConfig struct {
	AdminTemplate    string
	CustomerTemplate string
	AdminEmail       string
	CompletionDelay  time.Duration
	SpamDelay        time.Duration
	// Location formats the submission time shown in the emails.
	Location *time.Location
}

// Result is what the caller learns about a finished submission. Delivery
// failures are deliberately absent.
type Result struct {
	SubmissionID string
	Spam         bool
	SubmittedAt  time.Time
}

// SubmissionService uploads a form's media and relays it as two emails.
type SubmissionService struct {
	host    media.Host
	sender  email.Sender
	limiter *ratelimit.Limiter
	audit   AuditStore
	cfg     SubmissionConfig
	logger  *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewSubmissionService(
	host media.Host,
	sender email.Sender,
	limiter *ratelimit.Limiter,
	audit AuditStore,
	cfg SubmissionConfig,
	logger *slog.Logger,
) *SubmissionService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionService{
		host:    host,
		sender:  sender,
		limiter: limiter,
		audit:   audit,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		sleep:   sleepContext,
	}
}

// SetClock replaces the time source and the delay function. Used by tests.
func (s *SubmissionService) SetClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) {
	if now != nil {
		s.now = now
	}
	if sleep != nil {
		s.sleep = sleep
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Submit relays form on behalf of clientID. The only error a caller sees for
// a well-formed form is *ratelimit.BlockedError; upload and email failures are
// logged and recorded but never returned.
func (s *SubmissionService) Submit(ctx context.Context, clientID string, form models.FormState) (Result, error) {
	submittedAt := s.now()

	if form.Honeypot != "" {
		s.logger.Warn("spam detected via honeypot field", "client_id", clientID)
		if err := s.sleep(ctx, s.cfg.SpamDelay); err != nil {
			return Result{}, err
		}
		return Result{Spam: true, SubmittedAt: submittedAt}, nil
	}

	if err := s.limiter.Check(ctx, clientID, form.Email); err != nil {
		var blocked *ratelimit.BlockedError
		if errors.As(err, &blocked) {
			s.logger.Info("submission rate limited", "client_id", clientID, "remaining_hours", blocked.RemainingHours)
			return Result{}, err
		}
		// A broken store must not lose the submission.
		s.logger.Error("rate limit check failed", "error", err)
	}

	submissionID := uuid.New()
	logger := s.logger.With("submission_id", submissionID.String())
	logger.Info("starting submission", "files", form.FileCount())

	uploads := s.uploadAll(ctx, "submissions/"+submissionID.String(), form, logger)

	adminSent, customerSent, sendErr := s.sendEmails(ctx, form, uploads, submittedAt, logger)

	if err := s.limiter.RecordSubmission(ctx, clientID, form.Email); err != nil {
		logger.Error("failed to record submission for rate limiting", "error", err)
	}

	s.recordAudit(ctx, &database.Submission{
		ID:                submissionID,
		ClientID:          clientID,
		Email:             form.Email,
		Name:              form.Name,
		FileCount:         form.FileCount(),
		UploadedCount:     uploads.uploaded(),
		FailedUploads:     uploads.failed,
		AdminEmailSent:    adminSent,
		CustomerEmailSent: customerSent,
		ErrorMessage:      errorString(sendErr),
	}, logger)

	if err := s.sleep(ctx, s.cfg.CompletionDelay); err != nil {
		return Result{}, err
	}
	return Result{SubmissionID: submissionID.String(), SubmittedAt: submittedAt}, nil
}

// uploadResult holds the hosted URLs; an empty string marks a failed upload.
type uploadResult struct {
	logo           string
	photos         []string
	services       []string
	styleReference string
	failed         int
}

func (u *uploadResult) uploaded() int {
	n := 0
	if u.logo != "" {
		n++
	}
	if u.styleReference != "" {
		n++
	}
	for _, p := range u.photos {
		if p != "" {
			n++
		}
	}
	for _, p := range u.services {
		if p != "" {
			n++
		}
	}
	return n
}

func (s *SubmissionService) uploadAll(ctx context.Context, namespace string, form models.FormState, logger *slog.Logger) *uploadResult {
	res := &uploadResult{
		photos:   make([]string, len(form.Photos)),
		services: make([]string, len(form.Services)),
	}
	var mu sync.Mutex
	upload := func(asset *models.FileAsset) string {
		url, err := s.uploadAsset(ctx, namespace, asset)
		if err != nil {
			logger.Error("media upload failed", "file", asset.Name, "error", err)
			mu.Lock()
			res.failed++
			mu.Unlock()
			return ""
		}
		logger.Debug("media uploaded", "file", asset.Name, "url", url)
		return url
	}

	if form.Logo != nil {
		res.logo = upload(form.Logo)
	}

	// Photos go up concurrently; results are kept by index.
	var g errgroup.Group
	g.SetLimit(photoUploadConcurrency)
	for i := range form.Photos {
		i := i
		g.Go(func() error {
			res.photos[i] = upload(&form.Photos[i])
			return nil
		})
	}
	_ = g.Wait()

	for i, svc := range form.Services {
		if svc.Image != nil {
			res.services[i] = upload(svc.Image)
		}
	}

	if form.StyleReference != nil {
		res.styleReference = upload(form.StyleReference)
	}
	return res
}

func (s *SubmissionService) uploadAsset(ctx context.Context, namespace string, asset *models.FileAsset) (string, error) {
	data, mimeType, err := intake.DecodeDataURL(asset.Data)
	if err != nil {
		return "", err
	}
	if mimeType == "" {
		mimeType = asset.Type
	}
	return s.host.Upload(ctx, media.Object{
		Namespace:   namespace,
		Name:        asset.Name,
		ContentType: mimeType,
		Data:        data,
	})
}

// sendEmails sends the admin notice and then the customer confirmation. The
// second is attempted even when the first fails.
func (s *SubmissionService) sendEmails(ctx context.Context, form models.FormState, uploads *uploadResult, submittedAt time.Time, logger *slog.Logger) (adminSent, customerSent bool, err error) {
	when := submittedAt.In(s.cfg.Location).Format("Monday, 2 January 2006 15:04")

	var errs []error

	logger.Info("sending admin email")
	adminErr := s.sender.Send(ctx, email.Message{
		Template: s.cfg.AdminTemplate,
		To:       s.cfg.AdminEmail,
		Params:   AdminParams(form, uploads.logo, uploads.photos, uploads.services, uploads.styleReference, when),
	})
	if adminErr != nil {
		logger.Error("admin email failed", "error", adminErr)
		errs = append(errs, fmt.Errorf("admin email: %w", adminErr))
	}

	logger.Info("sending customer confirmation")
	customerErr := s.sender.Send(ctx, email.Message{
		Template: s.cfg.CustomerTemplate,
		To:       form.Email,
		Params:   CustomerParams(form, when),
	})
	if customerErr != nil {
		logger.Error("customer email failed", "error", customerErr)
		errs = append(errs, fmt.Errorf("customer email: %w", customerErr))
	}

	if len(errs) == 0 {
		logger.Info("both emails sent successfully")
	}
	return adminErr == nil, customerErr == nil, errors.Join(errs...)
}

func (s *SubmissionService) recordAudit(ctx context.Context, sub *database.Submission, logger *slog.Logger) {
	if s.audit == nil {
		return
	}
	if err := s.audit.CreateSubmission(ctx, sub); err != nil {
		logger.Error("failed to record submission audit", "error", err)
	}
}

func errorString(err error) sql.NullString {
	if err == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: err.Error(), Valid: true}
}

// nonBlank mirrors wizard.NonBlank for email rendering.
func nonBlank(values []string) []string {
	return wizard.NonBlank(values)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
