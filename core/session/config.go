package session

import (
	"log/slog"
	"time"

	"github.com/dilekatharuki/privacycore/core/anonymizer"
)

// Option is a functional option for configuring the store.
type Option func(*Store)

// WithAnonymizer sets the anonymizer used to redact inbound user text.
// Defaults to the package default registry.
func WithAnonymizer(anon *anonymizer.Anonymizer) Option {
	return func(s *Store) {
		if anon != nil {
			s.anonymizer = anon
		}
	}
}

// WithSalt sets the salt mixed into user identifier hashes. An empty salt is
// legal but weakens the hash against precomputed tables.
func WithSalt(salt string) Option {
	return func(s *Store) {
		s.salt = salt
	}
}

// WithClock injects the time source, letting tests produce deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for store operations. Defaults to a discard
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
