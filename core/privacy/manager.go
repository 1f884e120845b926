package privacy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dilekatharuki/privacycore/core/anonymizer"
	"github.com/dilekatharuki/privacycore/core/dp"
	"github.com/dilekatharuki/privacycore/core/session"
	"github.com/dilekatharuki/privacycore/core/stats"
	"github.com/dilekatharuki/privacycore/pkg/audit"
)

// Manager is the privacy core facade. All methods are safe for concurrent
// use.
type Manager struct {
	store *session.Store
	anon  *anonymizer.Anonymizer
	audit *audit.Recorder

	logger  *slog.Logger
	closers []io.Closer
}

// Option is a functional option for configuring the manager.
type Option func(*managerConfig)

type managerConfig struct {
	salt   string
	anon   *anonymizer.Anonymizer
	audit  *audit.Recorder
	logger *slog.Logger
	now    func() time.Time
}

// WithSalt sets the salt for user identifier hashing.
func WithSalt(salt string) Option {
	return func(c *managerConfig) {
		c.salt = salt
	}
}

// WithAnonymizer overrides the default PII pattern registry.
func WithAnonymizer(anon *anonymizer.Anonymizer) Option {
	return func(c *managerConfig) {
		if anon != nil {
			c.anon = anon
		}
	}
}

// WithAudit attaches an audit recorder; without one, actions are not
// recorded.
func WithAudit(recorder *audit.Recorder) Option {
	return func(c *managerConfig) {
		c.audit = recorder
	}
}

// WithLogger sets the logger for the manager and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(c *managerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock injects the time source used for session and message timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *managerConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewManager creates a privacy manager with an empty in-memory session store.
func NewManager(opts ...Option) *Manager {
	cfg := managerConfig{
		anon:   anonymizer.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := session.NewStore(
		session.WithAnonymizer(cfg.anon),
		session.WithSalt(cfg.salt),
		session.WithClock(cfg.now),
		session.WithLogger(cfg.logger),
	)

	return &Manager{
		store:  store,
		anon:   cfg.anon,
		audit:  cfg.audit,
		logger: cfg.logger,
	}
}

// NewManagerFromConfig builds a manager and a default engine from
// environment-driven configuration. Invalid privacy parameters surface
// dp.ErrInvalidParameter immediately; they are a deployment error, not a
// runtime condition. Call Close on the returned manager to release the audit
// log file, if one was opened.
func NewManagerFromConfig(cfg Config, opts ...Option) (*Manager, *dp.Engine, error) {
	engine, err := dp.NewEngine(cfg.Epsilon, cfg.Delta)
	if err != nil {
		return nil, nil, err
	}

	var closers []io.Closer
	if cfg.AuditLogPath != "" {
		f, err := os.OpenFile(cfg.AuditLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("privacy: open audit log: %w", err)
		}
		closers = append(closers, f)
		opts = append(opts, WithAudit(audit.NewRecorder(audit.WithWriter(f))))
	}

	manager := NewManager(append(opts, WithSalt(cfg.HashSalt))...)
	manager.closers = closers

	return manager, engine, nil
}

// Close releases resources owned by the manager, such as the audit log file.
func (m *Manager) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CreateSession registers a new session and returns its identifier. A
// non-empty userID is kept only as a salted one-way hash.
func (m *Manager) CreateSession(userID string) uuid.UUID {
	id := m.store.Create(userID)

	m.record("session_created", map[string]any{
		"session_id":  id.String(),
		"has_user_id": userID != "",
	})

	return id
}

// AddMessage redacts userText and appends the exchange to the session's
// history. Unknown or deleted session ids return session.ErrSessionNotFound.
func (m *Manager) AddMessage(sessionID uuid.UUID, userText, botResponse string, metadata map[string]any) error {
	if err := m.store.AddMessage(sessionID, userText, botResponse, metadata); err != nil {
		return err
	}

	m.record("message_added", map[string]any{
		"session_id": sessionID.String(),
	})

	return nil
}

// GetSession returns a deep copy of the session, or
// session.ErrSessionNotFound.
func (m *Manager) GetSession(sessionID uuid.UUID) (session.Session, error) {
	return m.store.Get(sessionID)
}

// DeleteSession removes the session and its history. Idempotent.
func (m *Manager) DeleteSession(sessionID uuid.UUID) {
	m.store.Delete(sessionID)

	m.record("session_deleted", map[string]any{
		"session_id": sessionID.String(),
	})
}

// ExportAggregates computes the usage aggregates over all live sessions and
// returns them privatized by the given engine.
func (m *Manager) ExportAggregates(engine *dp.Engine) map[string]any {
	noisy := stats.NewExporter(m.store, engine).Export()

	m.record("aggregates_exported", map[string]any{
		"epsilon": engine.Epsilon(),
		"delta":   engine.Delta(),
	})

	return noisy
}

// DetectPII scans text without modifying it, for callers that want to
// pre-check input outside the session flow. Matched values are returned to
// the caller but never written to the audit trail.
func (m *Manager) DetectPII(text string) map[string][]string {
	detected := m.anon.Detect(text)

	if len(detected) > 0 {
		counts := make(map[string]any, len(detected))
		for label, matches := range detected {
			counts[label] = len(matches)
		}
		m.record("pii_detected", counts)
	}

	return detected
}

// Redact replaces recognized PII in text with placeholder tokens.
func (m *Manager) Redact(text string) string {
	return m.anon.Redact(text)
}

func (m *Manager) record(action string, details map[string]any) {
	if m.audit != nil {
		m.audit.Record(action, details)
	}
}
