// Package ratelimit blocks repeat submissions from the same submitter within a
// cooldown window.
//
// Only the most recent submission is remembered per scope: a single slot holds
// {email, timestamp}. A different email in the same scope overwrites it.
package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	KeyPrefix     = "webora_last_submission"
	DefaultWindow = 24 * time.Hour
)

// SlotStore persists one opaque record per key.
type SlotStore interface {
	GetSlot(ctx context.Context, key string) (value []byte, found bool, err error)
	PutSlot(ctx context.Context, key string, value []byte) error
}

type record struct {
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
}

// Decision is the result of a CanSubmit check.
type Decision struct {
	Allowed        bool
	RemainingHours int
}

// BlockedError is returned to callers that must refuse a submission.
type BlockedError struct {
	RemainingHours int
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("submission limit reached, try again in %d hours", e.RemainingHours)
}

type Limiter struct {
	store  SlotStore
	window time.Duration
	now    func() time.Time
}

type Option func(*Limiter)

func WithWindow(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.window = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

func New(store SlotStore, opts ...Option) *Limiter {
	l := &Limiter{store: store, window: DefaultWindow, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func slotKey(scope string) string {
	if scope == "" {
		return KeyPrefix
	}
	return KeyPrefix + ":" + scope
}

// CanSubmit reports whether email may submit now within scope. A missing or
// unreadable record allows the submission.
func (l *Limiter) CanSubmit(ctx context.Context, scope, email string) (Decision, error) {
	raw, found, err := l.store.GetSlot(ctx, slotKey(scope))
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read rate limit slot: %w", err)
	}
	if !found {
		return Decision{Allowed: true}, nil
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Decision{Allowed: true}, nil
	}
	if rec.Email != email {
		return Decision{Allowed: true}, nil
	}
	last, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		return Decision{Allowed: true}, nil
	}

	elapsed := l.now().Sub(last)
	if elapsed >= l.window {
		return Decision{Allowed: true}, nil
	}
	remaining := int(math.Ceil((l.window - elapsed).Hours()))
	return Decision{Allowed: false, RemainingHours: remaining}, nil
}

// Check is CanSubmit that returns a *BlockedError when the submission is refused.
func (l *Limiter) Check(ctx context.Context, scope, email string) error {
	d, err := l.CanSubmit(ctx, scope, email)
	if err != nil {
		return err
	}
	if !d.Allowed {
		return &BlockedError{RemainingHours: d.RemainingHours}
	}
	return nil
}

// RecordSubmission overwrites the slot for scope with email and the current time.
func (l *Limiter) RecordSubmission(ctx context.Context, scope, email string) error {
	raw, err := json.Marshal(record{
		Email:     email,
		Timestamp: l.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	if err := l.store.PutSlot(ctx, slotKey(scope), raw); err != nil {
		return fmt.Errorf("failed to write rate limit slot: %w", err)
	}
	return nil
}
