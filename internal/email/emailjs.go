package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultEmailJSBaseURL = "https://api.emailjs.com/api/v1.0/"

type EmailJSConfig struct {
	BaseURL    string
	ServiceID  string
	PublicKey  string
	PrivateKey string
}

// EmailJSClient calls the EmailJS REST send endpoint.
type EmailJSClient struct {
	cfg        EmailJSConfig
	httpClient *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSClient(cfg EmailJSConfig) (*EmailJSClient, error) {
	if cfg.ServiceID == "" {
		return nil, fmt.Errorf("%w: EmailJS service id is required", ErrInvalidConfig)
	}
	if cfg.PublicKey == "" {
		return nil, fmt.Errorf("%w: EmailJS public key is required", ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultEmailJSBaseURL
	}
	return &EmailJSClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *EmailJSClient) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	jsonData, err := json.Marshal(emailJSRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     msg.Template,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("emailjs error: status %d, body: %s", resp.StatusCode, string(body)),
		)
	}
	return nil
}
