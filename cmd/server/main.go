// @title           Client Intake API
// @version         1.0.0
// @description     Six-step client intake wizard. Collects business details, media and preferences, then relays the submission to the studio and the client by email.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"client-intake-backend/docs"
	"client-intake-backend/internal/config"
	"client-intake-backend/internal/database"
	"client-intake-backend/internal/email"
	"client-intake-backend/internal/handlers"
	"client-intake-backend/internal/imaging"
	"client-intake-backend/internal/intake"
	"client-intake-backend/internal/logging"
	"client-intake-backend/internal/media"
	"client-intake-backend/internal/middleware"
	"client-intake-backend/internal/ratelimit"
	"client-intake-backend/internal/s3storage"
	"client-intake-backend/internal/services"
	"client-intake-backend/internal/session"
	"client-intake-backend/internal/supabase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "intake: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "intake",
		Short:        "Client intake wizard backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.AddCommand(newServeCmd(), newMigrateCmd(), newSubmissionsCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.ForEnvironment(cfg.Environment, cfg.LogLevel, cfg.LogFormat)
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required for migrate")
			}
			return migrate(cmd.Context(), cfg.DatabaseURL, logger)
		},
	}
}

func newSubmissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submissions <email>",
		Short: "List the audit rows recorded for an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required for submissions")
			}
			db, err := database.NewDatabaseClient(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()
			return listSubmissions(cmd.Context(), db, args[0], cmd.OutOrStdout())
		},
	}
}

type submissionLister interface {
	ListSubmissionsByEmail(ctx context.Context, email string) ([]database.Submission, error)
}

func listSubmissions(ctx context.Context, db submissionLister, email string, out io.Writer) error {
	subs, err := db.ListSubmissionsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		_, err := fmt.Fprintf(out, "no submissions for %s\n", email)
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tID\tNAME\tFILES\tADMIN\tCUSTOMER\tERROR")
	for _, s := range subs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%t\t%t\t%s\n",
			s.CreatedAt.Format(time.RFC3339), s.ID, s.Name, s.UploadedCount, s.FileCount,
			s.AdminEmailSent, s.CustomerEmailSent, s.ErrorMessage.String)
	}
	return tw.Flush()
}

func migrate(ctx context.Context, dbURL string, logger *slog.Logger) error {
	migrator, err := database.NewMigrator(dbURL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("migrations completed successfully")
	return nil
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.ForEnvironment(cfg.Environment, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	host, err := newMediaHost(ctx, cfg)
	if err != nil {
		return err
	}
	sender, err := newEmailSender(cfg)
	if err != nil {
		return err
	}

	var slots ratelimit.SlotStore = ratelimit.NewMemorySlotStore()
	var audit services.AuditStore
	if cfg.DatabaseURL != "" {
		if err := migrate(ctx, cfg.DatabaseURL, logger); err != nil {
			logger.Warn("continuing without applying migrations", "error", err)
		}
		dbClient, err := database.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database client: %w", err)
		}
		defer dbClient.Close()
		slots = dbClient
		audit = dbClient
	} else {
		logger.Warn("DATABASE_URL not set; submission limits are kept in memory and reset on restart")
	}

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Warn("unknown TIME_ZONE, using UTC", "time_zone", cfg.TimeZone, "error", err)
		location = time.UTC
	}

	limiter := ratelimit.New(slots, ratelimit.WithWindow(cfg.RateLimitWindow))
	submissions := services.NewSubmissionService(host, sender, limiter, audit, services.SubmissionConfig{
		AdminTemplate:    cfg.AdminTemplate,
		CustomerTemplate: cfg.CustomerTemplate,
		AdminEmail:       cfg.AdminEmail,
		CompletionDelay:  cfg.CompletionDelay,
		SpamDelay:        cfg.SpamDelay,
		Location:         location,
	}, logger)

	store, err := session.NewStore(cfg.SessionTTL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	go store.StartCleanupRoutine(ctx, cfg.SessionCleanupInterval)

	encoder := imaging.NewJPEGEncoder(cfg.MaxImageEdge, cfg.JPEGQuality)
	encoder.MaxPixels = cfg.MaxPixels
	in := intake.New(intake.Config{
		Compress:     cfg.CompressImages,
		MaxFileBytes: cfg.MaxFileBytes,
	}, encoder, logger)

	tokens := middleware.NewTokens(cfg.SessionSecret)
	router := handlers.NewRouter(handlers.RouterConfig{
		Sessions:          handlers.NewSessionsHandler(store, tokens, cfg.IsProduction(), logger),
		Wizard:            handlers.NewWizardHandler(store, in, submissions, cfg.MaxUploadBytes, logger),
		Tokens:            tokens,
		RequestsPerMinute: cfg.RequestsPerMinute,
		Logger:            logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "media_backend", cfg.MediaBackend, "email_backend", cfg.EmailBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newMediaHost(ctx context.Context, cfg *config.Config) (media.Host, error) {
	switch cfg.MediaBackend {
	case config.MediaSupabase:
		client, err := supabase.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
		}
		return supabase.NewStorageClient(client, cfg.SupabaseStorageBucket), nil
	case config.MediaS3:
		storage, err := s3storage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		if err := storage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return storage, nil
	default:
		client, err := media.NewCloudinaryClient(cfg.CloudinaryBaseURL, cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

func newEmailSender(cfg *config.Config) (email.Sender, error) {
	switch cfg.EmailBackend {
	case config.EmailPostmark:
		return email.NewPostmarkClient(email.PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			SenderEmail:  cfg.SenderEmail,
			ReplyTo:      cfg.AdminEmail,
		})
	default:
		return email.NewEmailJSClient(email.EmailJSConfig{
			BaseURL:    cfg.EmailJSBaseURL,
			ServiceID:  cfg.EmailJSServiceID,
			PublicKey:  cfg.EmailJSPublicKey,
			PrivateKey: cfg.EmailJSPrivateKey,
		})
	}
}
