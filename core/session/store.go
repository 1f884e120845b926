package session

import (
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dilekatharuki/privacycore/core/anonymizer"
	"github.com/dilekatharuki/privacycore/pkg/hashid"
)

// record wraps a live session with its own lock so that operations on one
// session serialize without blocking unrelated sessions. The deleted flag
// closes the race between a caller that resolved the record and a concurrent
// Delete that already removed it from the registry.
type record struct {
	mu      sync.Mutex
	session Session
	deleted bool
}

// Store owns all live sessions for its lifetime. The registry map is guarded
// by an RWMutex; each session carries a per-record mutex for history access.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*record

	anonymizer *anonymizer.Anonymizer
	salt       string
	now        func() time.Time
	logger     *slog.Logger
}

// NewStore creates an empty in-memory session store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions:   make(map[uuid.UUID]*record),
		anonymizer: anonymizer.New(),
		now:        time.Now,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create registers a new session and returns its fresh unique identifier.
// A non-empty userID is stored only as its salted one-way hash; the raw value
// is discarded immediately.
func (s *Store) Create(userID string) uuid.UUID {
	id := uuid.New()

	sess := Session{
		ID:        id,
		CreatedAt: s.now(),
	}
	if userID != "" {
		sess.HashedUserID = hashid.Hash(userID, s.salt)
	}

	s.mu.Lock()
	s.sessions[id] = &record{session: sess}
	s.mu.Unlock()

	s.logger.Debug("session created",
		slog.String("session_id", id.String()),
		slog.Bool("has_user_id", userID != ""))

	return id
}

// Get returns a deep copy of the session, or ErrSessionNotFound for unknown
// or deleted ids.
func (s *Store) Get(id uuid.UUID) (Session, error) {
	rec, ok := s.lookup(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted {
		return Session{}, ErrSessionNotFound
	}

	return rec.session.clone(), nil
}

// AddMessage redacts userText, builds a MessageEntry, and appends it to the
// session's history. Appends for one session are serialized, so racing calls
// observe some total order with no entry lost or duplicated. Unknown or
// deleted ids return ErrSessionNotFound and never create a session as a side
// effect.
func (s *Store) AddMessage(id uuid.UUID, userText, botResponse string, metadata map[string]any) error {
	rec, ok := s.lookup(id)
	if !ok {
		return ErrSessionNotFound
	}

	// Redaction is pure, so it runs outside the session lock.
	anonymized := s.anonymizer.Redact(userText)

	var meta map[string]any
	if metadata != nil {
		meta = maps.Clone(metadata)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted {
		return ErrSessionNotFound
	}

	rec.session.History = append(rec.session.History, MessageEntry{
		Timestamp:   s.now(),
		UserMessage: anonymized,
		BotResponse: botResponse,
		Metadata:    meta,
	})

	return nil
}

// Delete removes the session and all its history. Deleting an unknown or
// already-deleted id is not an error.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	rec, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	rec.mu.Lock()
	rec.deleted = true
	rec.session.History = nil
	rec.mu.Unlock()

	s.logger.Debug("session deleted", slog.String("session_id", id.String()))
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Totals returns a consistent snapshot of the live session count and the
// total number of stored messages across them. A session deleted while the
// snapshot is taken simply does not contribute.
func (s *Store) Totals() (sessions, messages int) {
	s.mu.RLock()
	records := make([]*record, 0, len(s.sessions))
	for _, rec := range s.sessions {
		records = append(records, rec)
	}
	s.mu.RUnlock()

	for _, rec := range records {
		rec.mu.Lock()
		if !rec.deleted {
			sessions++
			messages += len(rec.session.History)
		}
		rec.mu.Unlock()
	}

	return sessions, messages
}

// lookup resolves a record under the registry read lock.
func (s *Store) lookup(id uuid.UUID) (*record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[id]
	return rec, ok
}
