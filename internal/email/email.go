// Package email sends templated notifications through a transactional email API.
package email

import (
	"context"
	"errors"
)

var (
	ErrFailedToSendEmail = errors.New("email: failed to send email")
	ErrInvalidConfig     = errors.New("email: invalid config")
	ErrInvalidMessage    = errors.New("email: invalid message")
)

// Message is a template invocation. Params are flat string variables.
type Message struct {
	Template string
	// To is the recipient. Providers that address recipients inside the
	// template may ignore it.
	To     string
	Params map[string]string
}

func (m Message) Validate() error {
	if m.Template == "" {
		return errors.Join(ErrInvalidMessage, errors.New("template is required"))
	}
	return nil
}

// Sender delivers templated email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
