// Package session provides an in-memory, concurrency-safe store for
// conversational sessions with privacy-preserving persistence semantics: user
// identifiers are stored only as salted one-way hashes, and every inbound user
// message is redacted through the anonymizer before it reaches the history.
//
// # Core Types
//
//   - Session: one conversational window with an append-only message history
//   - MessageEntry: one exchange (anonymized user text, bot response, metadata)
//   - Store: owns all live sessions and their lifecycle
//
// # Basic Usage
//
//	import "github.com/dilekatharuki/privacycore/core/session"
//
//	store := session.NewStore(session.WithSalt(salt))
//
//	id := store.Create("user-42") // only hash(user-42 || salt) is kept
//
//	err := store.AddMessage(id, "my email is a@b.com", "Noted!", map[string]any{
//		"intent": "smalltalk",
//	})
//
//	sess, err := store.Get(id) // deep copy, history in call order
//
//	store.Delete(id) // idempotent
//
// # Concurrency
//
// The store is safe for concurrent use. Operations on one session are
// serialized by a per-session lock, so racing AddMessage calls never lose or
// duplicate an entry; operations on different sessions do not block each
// other. Get returns a deep copy, so no caller ever holds a reference into
// live store state.
//
// # Aggregates
//
// Totals exposes derived counts (live sessions, total messages) for the
// stats exporter. The exporter never sees individual messages.
package session
