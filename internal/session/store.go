// Package session keeps wizard sessions in an in-memory database.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"client-intake-backend/internal/wizard"
)

const table = "session"

var (
	ErrNotFound = errors.New("session: not found")
	ErrExpired  = errors.New("session: expired")
)

// Session is one browser's pass through the wizard.
type Session struct {
	ID        string
	ClientID  string
	Wizard    *wizard.Wizard
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) clone() *Session {
	c := *s
	c.Wizard = s.Wizard.Clone()
	return &c
}

type Store struct {
	db     *memdb.MemDB
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			table: {
				Name: table,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:         "id",
						Unique:       true,
						Indexer:      &memdb.StringFieldIndex{Field: "ID"},
						AllowMissing: false,
					},
					"client": {
						Name:         "client",
						Unique:       false,
						Indexer:      &memdb.StringFieldIndex{Field: "ClientID"},
						AllowMissing: false,
					},
				},
			},
		},
	}
}

func NewStore(ttl time.Duration, logger *slog.Logger) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create session db: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, ttl: ttl, now: time.Now, logger: logger}, nil
}

// SetClock replaces the time source. Used by tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Create starts a fresh wizard for clientID.
func (s *Store) Create(clientID string) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Wizard:    wizard.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(table, sess); err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	txn.Commit()

	s.logger.Debug("session created", "session_id", sess.ID, "client_id", clientID)
	return sess.clone(), nil
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (*Session, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	sess, err := s.lookup(txn, id)
	if err != nil {
		return nil, err
	}
	return sess.clone(), nil
}

// Update applies fn to a copy of the session's wizard and stores the result
// when fn succeeds. Writers are serialised by the database.
func (s *Store) Update(id string, fn func(w *wizard.Wizard) error) (*Session, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	current, err := s.lookup(txn, id)
	if err != nil {
		return nil, err
	}

	next := current.clone()
	if err := fn(next.Wizard); err != nil {
		return current.clone(), err
	}

	if err := txn.Insert(table, next); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	txn.Commit()
	return next.clone(), nil
}

func (s *Store) lookup(txn *memdb.Txn, id string) (*Session, error) {
	raw, err := txn.First(table, "id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	sess := raw.(*Session)
	if !s.now().Before(sess.ExpiresAt) {
		return nil, ErrExpired
	}
	return sess, nil
}

// DeleteExpired removes every session past its expiry and returns how many.
func (s *Store) DeleteExpired() (int, error) {
	now := s.now()

	txn := s.db.Txn(true)
	defer txn.Abort()

	it, err := txn.Get(table, "id")
	if err != nil {
		return 0, fmt.Errorf("failed to scan sessions: %w", err)
	}

	var expired []*Session
	for obj := it.Next(); obj != nil; obj = it.Next() {
		sess := obj.(*Session)
		if !now.Before(sess.ExpiresAt) {
			expired = append(expired, sess)
		}
	}
	for _, sess := range expired {
		if err := txn.Delete(table, sess); err != nil {
			return 0, fmt.Errorf("failed to delete session: %w", err)
		}
		s.logger.Debug("deleted expired session", "session_id", sess.ID)
	}
	txn.Commit()
	return len(expired), nil
}

// StartCleanupRoutine deletes expired sessions every interval until ctx is done.
func (s *Store) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.DeleteExpired()
			if err != nil {
				s.logger.Error("session cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Info("session cleanup", "deleted", n)
			}
		}
	}
}
