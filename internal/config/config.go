package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	MediaCloudinary = "cloudinary"
	MediaSupabase   = "supabase"
	MediaS3         = "s3"

	EmailEmailJS  = "emailjs"
	EmailPostmark = "postmark"
)

type Config struct {
	// Server
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"`

	// Sessions
	SessionSecret          string        `env:"SESSION_SECRET"`
	SessionTTL             time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m"`
	RequestsPerMinute      float64       `env:"REQUESTS_PER_MINUTE" envDefault:"120"`

	// Intake
	CompressImages bool  `env:"INTAKE_COMPRESS_IMAGES" envDefault:"true"`
	MaxFileBytes   int64 `env:"INTAKE_MAX_FILE_BYTES" envDefault:"1048576"`
	MaxImageEdge   int   `env:"INTAKE_MAX_EDGE" envDefault:"1200"`
	MaxPixels      int64 `env:"INTAKE_MAX_PIXELS" envDefault:"40000000"`
	JPEGQuality    int   `env:"INTAKE_JPEG_QUALITY" envDefault:"80"`
	MaxUploadBytes int64 `env:"INTAKE_MAX_UPLOAD_BYTES" envDefault:"33554432"`

	// Submission
	CompletionDelay time.Duration `env:"COMPLETION_DELAY" envDefault:"2s"`
	SpamDelay       time.Duration `env:"SPAM_DELAY" envDefault:"1500ms"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"24h"`
	TimeZone        string        `env:"TIME_ZONE" envDefault:"Europe/Athens"`

	// Media host
	MediaBackend string `env:"MEDIA_BACKEND" envDefault:"cloudinary"`

	CloudinaryBaseURL      string `env:"CLOUDINARY_BASE_URL"`
	CloudinaryCloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryUploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"`

	SupabaseURL           string `env:"SUPABASE_URL"`
	SupabaseServiceKey    string `env:"SUPABASE_SERVICE_KEY"`
	SupabaseStorageBucket string `env:"SUPABASE_STORAGE_BUCKET" envDefault:"intake-media"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET" envDefault:"intake-media"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3UseSSL    bool   `env:"S3_USE_SSL" envDefault:"true"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Email
	EmailBackend     string `env:"EMAIL_BACKEND" envDefault:"emailjs"`
	AdminTemplate    string `env:"ADMIN_TEMPLATE"`
	CustomerTemplate string `env:"CUSTOMER_TEMPLATE"`
	AdminEmail       string `env:"ADMIN_EMAIL"`

	EmailJSBaseURL    string `env:"EMAILJS_BASE_URL"`
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey string `env:"EMAILJS_PRIVATE_KEY"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`

	// Database
	DatabaseURL string `env:"DATABASE_URL"`
}

// Load reads the environment, after an optional .env file, and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.AdminTemplate == "" || c.CustomerTemplate == "" {
		return fmt.Errorf("ADMIN_TEMPLATE and CUSTOMER_TEMPLATE are required")
	}
	if c.SessionTTL <= 0 || c.SessionCleanupInterval <= 0 {
		return fmt.Errorf("SESSION_TTL and SESSION_CLEANUP_INTERVAL must be positive")
	}
	if c.MaxFileBytes <= 0 || c.MaxUploadBytes <= 0 {
		return fmt.Errorf("INTAKE_MAX_FILE_BYTES and INTAKE_MAX_UPLOAD_BYTES must be positive")
	}
	if c.MaxPixels <= 0 {
		return fmt.Errorf("INTAKE_MAX_PIXELS must be positive")
	}

	switch c.MediaBackend {
	case MediaCloudinary:
		if c.CloudinaryCloudName == "" || c.CloudinaryUploadPreset == "" {
			return fmt.Errorf("CLOUDINARY_CLOUD_NAME and CLOUDINARY_UPLOAD_PRESET are required")
		}
	case MediaSupabase:
		if c.SupabaseURL == "" || c.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required")
		}
	case MediaS3:
		if c.S3Endpoint == "" || c.S3AccessKey == "" || c.S3SecretKey == "" {
			return fmt.Errorf("S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY are required")
		}
	default:
		return fmt.Errorf("unknown MEDIA_BACKEND %q", c.MediaBackend)
	}

	switch c.EmailBackend {
	case EmailEmailJS:
		if c.EmailJSServiceID == "" || c.EmailJSPublicKey == "" {
			return fmt.Errorf("EMAILJS_SERVICE_ID and EMAILJS_PUBLIC_KEY are required")
		}
	case EmailPostmark:
		if c.PostmarkServerToken == "" || c.SenderEmail == "" || c.AdminEmail == "" {
			return fmt.Errorf("POSTMARK_SERVER_TOKEN, SENDER_EMAIL and ADMIN_EMAIL are required")
		}
	default:
		return fmt.Errorf("unknown EMAIL_BACKEND %q", c.EmailBackend)
	}

	return nil
}
