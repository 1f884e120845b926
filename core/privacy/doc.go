// Package privacy composes the anonymizer, session store, differential
// privacy engine, and audit trail into the surface consumed by the service
// layer: session lifecycle with redacted history, standalone PII checks, and
// privatized aggregate exports.
//
// # Basic Usage
//
//	import (
//		"github.com/dilekatharuki/privacycore/core/dp"
//		"github.com/dilekatharuki/privacycore/core/privacy"
//	)
//
//	manager := privacy.NewManager(privacy.WithSalt(salt))
//
//	id := manager.CreateSession("user-42")
//	err := manager.AddMessage(id, "my email is a@b.com", "Noted!", nil)
//	sess, err := manager.GetSession(id)
//	manager.DeleteSession(id) // idempotent
//
//	engine, err := dp.NewEngine(1.0, 1e-5)
//	noisy := manager.ExportAggregates(engine)
//
// Standalone PII helpers for callers that want to pre-check text outside the
// session flow:
//
//	found := manager.DetectPII("call 555-123-4567")
//	clean := manager.Redact("call 555-123-4567")
//
// # Configuration
//
// Config carries the environment-driven settings (PRIVACY_EPSILON,
// PRIVACY_DELTA, PRIVACY_HASH_SALT, PRIVACY_AUDIT_LOG) and
// NewManagerFromConfig builds a Manager plus a default engine from them,
// surfacing dp.ErrInvalidParameter at startup.
//
// # Auditing
//
// When a recorder is configured, the manager records session_created,
// message_added, session_deleted, aggregates_exported, and pii_detected
// actions. Audit details carry identifiers, labels, and counts only — never
// message text.
package privacy
