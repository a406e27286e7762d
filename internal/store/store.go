// Package store persists whole user documents in a local sqlite database.
// Each (domain, user) pair holds exactly one JSON document; writes replace
// the document wholesale, last writer wins. The store never inspects document
// contents.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// Document domains. A user has at most one document per domain.
const (
	DomainFinance  = "pf_state"
	DomainMortgage = "mtg_state"
)

// Store is a sqlite-backed document store.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the database at path and migrates it. A nil
// logger disables logging.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "create store directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("document store opened", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored document for (domain, userID), or (nil, nil) when
// the user has none.
func (s *Store) Load(ctx context.Context, domain, userID string) (json.RawMessage, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE domain = ? AND user_id = ?`,
		domain, userID,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load document %s/%s", domain, userID)
	}
	return json.RawMessage(doc), nil
}

// Upsert replaces the user's document for the domain. Each write gets a fresh
// revision id; there is no merge and no optimistic locking.
func (s *Store) Upsert(ctx context.Context, domain, userID string, doc json.RawMessage) error {
	revision := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (domain, user_id, revision, doc, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (domain, user_id)
		 DO UPDATE SET revision = excluded.revision,
		               doc = excluded.doc,
		               updated_at = excluded.updated_at`,
		domain, userID, revision, string(doc), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrapf(err, "upsert document %s/%s", domain, userID)
	}

	s.logger.Debug("document upserted",
		zap.String("domain", domain),
		zap.String("userID", userID),
		zap.String("revision", revision),
		zap.Int("bytes", len(doc)),
	)
	return nil
}
