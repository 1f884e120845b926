package privacy_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilekatharuki/privacycore/core/dp"
	"github.com/dilekatharuki/privacycore/core/privacy"
	"github.com/dilekatharuki/privacycore/core/session"
	"github.com/dilekatharuki/privacycore/pkg/audit"
	"github.com/dilekatharuki/privacycore/pkg/hashid"
)

func TestManager_SessionFlow(t *testing.T) {
	t.Parallel()

	manager := privacy.NewManager(privacy.WithSalt("salt"))

	id := manager.CreateSession("user-42")

	require.NoError(t, manager.AddMessage(id, "my email is a@b.com", "Got it", nil))
	require.NoError(t, manager.AddMessage(id, "and my number is 555-123-4567", "Noted", map[string]any{
		"intent": "share_contact",
	}))
	require.NoError(t, manager.AddMessage(id, "thanks", "You're welcome", nil))

	sess, err := manager.GetSession(id)
	require.NoError(t, err)

	assert.Equal(t, hashid.Hash("user-42", "salt"), sess.HashedUserID)
	require.Len(t, sess.History, 3)
	assert.Contains(t, sess.History[0].UserMessage, "[EMAIL]")
	assert.Contains(t, sess.History[1].UserMessage, "[PHONE]")
	assert.Equal(t, "thanks", sess.History[2].UserMessage)
	assert.Equal(t, "share_contact", sess.History[1].Metadata["intent"])

	manager.DeleteSession(id)
	manager.DeleteSession(id) // idempotent

	_, err = manager.GetSession(id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_AddMessageUnknownSession(t *testing.T) {
	t.Parallel()

	manager := privacy.NewManager()

	err := manager.AddMessage(uuid.New(), "hello", "hi", nil)

	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_ExportAggregates(t *testing.T) {
	t.Parallel()

	manager := privacy.NewManager()
	first := manager.CreateSession("")
	second := manager.CreateSession("")
	require.NoError(t, manager.AddMessage(first, "a", "b", nil))
	require.NoError(t, manager.AddMessage(second, "c", "d", nil))
	require.NoError(t, manager.AddMessage(second, "e", "f", nil))

	engine, err := dp.NewEngine(math.Inf(1), 1e-5)
	require.NoError(t, err)

	got := manager.ExportAggregates(engine)

	assert.Equal(t, 2.0, got["total_sessions"])
	assert.Equal(t, 3.0, got["total_messages"])
	assert.Equal(t, 1.5, got["avg_messages_per_session"])
}

func TestManager_StandalonePIIHelpers(t *testing.T) {
	t.Parallel()

	manager := privacy.NewManager()

	detected := manager.DetectPII("ssn 123-45-6789")
	require.Contains(t, detected, "ssn")
	assert.Equal(t, []string{"123-45-6789"}, detected["ssn"])

	assert.Equal(t, "ssn [SSN]", manager.Redact("ssn 123-45-6789"))
	assert.Empty(t, manager.DetectPII("nothing sensitive"))
}

func TestManager_AuditTrail(t *testing.T) {
	t.Parallel()

	recorder := audit.NewRecorder()
	manager := privacy.NewManager(privacy.WithAudit(recorder))

	id := manager.CreateSession("user-42")
	require.NoError(t, manager.AddMessage(id, "mail me at a@b.com", "ok", nil))
	manager.DetectPII("call 555-123-4567")
	manager.DeleteSession(id)

	engine, err := dp.NewEngine(1.0, 1e-5)
	require.NoError(t, err)
	manager.ExportAggregates(engine)

	assert.Len(t, recorder.Entries("session_created"), 1)
	assert.Len(t, recorder.Entries("message_added"), 1)
	assert.Len(t, recorder.Entries("pii_detected"), 1)
	assert.Len(t, recorder.Entries("session_deleted"), 1)
	assert.Len(t, recorder.Entries("aggregates_exported"), 1)

	// Audit details carry counts and identifiers, never message text.
	pii := recorder.Entries("pii_detected")[0]
	assert.Equal(t, 1, pii.Details["phone"])
	for _, value := range pii.Details {
		assert.IsType(t, int(0), value)
	}

	exported := recorder.Entries("aggregates_exported")[0]
	assert.Equal(t, 1.0, exported.Details["epsilon"])
}

func TestManager_NoAuditRecorder(t *testing.T) {
	t.Parallel()

	manager := privacy.NewManager()

	// No recorder configured; actions must simply not be recorded.
	id := manager.CreateSession("")
	manager.DeleteSession(id)
}

func TestNewManagerFromConfig(t *testing.T) {
	t.Parallel()

	auditPath := filepath.Join(t.TempDir(), "privacy_audit.log")

	manager, engine, err := privacy.NewManagerFromConfig(privacy.Config{
		Epsilon:      1.0,
		Delta:        1e-5,
		HashSalt:     "pepper",
		AuditLogPath: auditPath,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	assert.Equal(t, 1.0, engine.Epsilon())
	assert.Equal(t, 1e-5, engine.Delta())

	id := manager.CreateSession("user-1")
	sess, err := manager.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, hashid.Hash("user-1", "pepper"), sess.HashedUserID)

	require.NoError(t, manager.Close())
}

func TestNewManagerFromConfig_InvalidParameters(t *testing.T) {
	t.Parallel()

	_, _, err := privacy.NewManagerFromConfig(privacy.Config{Epsilon: 0, Delta: 1e-5})
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)

	_, _, err = privacy.NewManagerFromConfig(privacy.Config{Epsilon: 1.0, Delta: 1.5})
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)
}
