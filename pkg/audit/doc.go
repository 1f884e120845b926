// Package audit records privacy-related actions (session creation, message
// anonymization, aggregate exports) as an append-only trail. Entries are
// always kept in memory and can additionally be written as JSON lines to any
// io.Writer.
//
// Usage:
//
//	import "github.com/dilekatharuki/privacycore/pkg/audit"
//
//	f, _ := os.OpenFile("privacy_audit.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
//	recorder := audit.NewRecorder(audit.WithWriter(f))
//
//	recorder.Record("session_created", map[string]any{"session_id": id})
//
//	created := recorder.Entries("session_created")
//	all := recorder.Entries("")
//
// Recording never fails: a write error on the configured writer is logged and
// the in-memory entry is kept. Details maps must not contain raw user text;
// callers are expected to record counts, labels, and identifiers only.
package audit
