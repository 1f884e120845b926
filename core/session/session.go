package session

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Session represents one conversational interaction window. Values returned
// by the store are deep copies; mutating them never affects live state.
type Session struct {
	// ID is the opaque unique session identifier, immutable once created.
	ID uuid.UUID

	// HashedUserID is the salted one-way hash of the caller-supplied user
	// identifier, or empty for anonymous sessions. The raw identifier is
	// never stored.
	HashedUserID string

	CreatedAt time.Time

	// History is the ordered, append-only sequence of exchanges. Insertion
	// order is preserved and entries are never edited after append.
	History []MessageEntry
}

// MessageEntry is one exchange. Entries are created exactly once by
// AddMessage, never edited, and removed only when their owning session is
// deleted.
type MessageEntry struct {
	Timestamp time.Time

	// UserMessage holds the post-redaction user text. Raw user text never
	// reaches the history.
	UserMessage string

	// BotResponse is stored as produced by the upstream response layer; it
	// is assumed not to echo PII and is not redacted.
	BotResponse string

	// Metadata is an open key/value map (intent, confidence, persona, ...).
	Metadata map[string]any
}

// clone returns a deep copy of the session, including history entries and
// their metadata maps.
func (s Session) clone() Session {
	out := s
	if s.History != nil {
		out.History = make([]MessageEntry, len(s.History))
		for i, entry := range s.History {
			out.History[i] = entry.clone()
		}
	}
	return out
}

func (e MessageEntry) clone() MessageEntry {
	out := e
	if e.Metadata != nil {
		out.Metadata = maps.Clone(e.Metadata)
	}
	return out
}
