package audit

import (
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"
)

// Entry is one recorded privacy action.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
}

// Recorder is an append-only, concurrency-safe audit trail.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	enc     *json.Encoder

	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithWriter appends every entry to w as one JSON line in addition to the
// in-memory trail.
func WithWriter(w io.Writer) Option {
	return func(r *Recorder) {
		if w != nil {
			r.enc = json.NewEncoder(w)
		}
	}
}

// WithLogger sets the logger used to report write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock injects the time source, letting tests produce deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder creates an audit recorder. Without options it keeps entries in
// memory only and discards log output.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Record appends an entry for action. The details map is copied, so callers
// may reuse it. Recording never returns an error; a failed write to the
// configured writer is logged and the in-memory entry is kept.
func (r *Recorder) Record(action string, details map[string]any) {
	entry := Entry{
		Timestamp: r.now().UTC(),
		Action:    action,
		Details:   cloneDetails(details),
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	var encErr error
	if r.enc != nil {
		encErr = r.enc.Encode(entry)
	}
	r.mu.Unlock()

	if encErr != nil {
		r.logger.Warn("audit write failed",
			slog.String("action", action),
			slog.Any("error", encErr))
	}
}

// Entries returns recorded entries filtered by action; an empty action
// returns everything. The result is a deep copy in recording order, so
// callers cannot mutate the trail.
func (r *Recorder) Entries(action string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		if action == "" || entry.Action == action {
			entry.Details = cloneDetails(entry.Details)
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func cloneDetails(details map[string]any) map[string]any {
	if details == nil {
		return nil
	}
	return maps.Clone(details)
}
