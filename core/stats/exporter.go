package stats

import "github.com/dilekatharuki/privacycore/core/dp"

// Source supplies a consistent snapshot of derived session counts.
// *session.Store satisfies this interface.
type Source interface {
	Totals() (sessions, messages int)
}

// Exporter computes plain aggregates over a Source and privatizes them with
// a differential privacy engine.
type Exporter struct {
	source Source
	engine *dp.Engine
}

// NewExporter creates an exporter over the given count source and engine.
func NewExporter(source Source, engine *dp.Engine) *Exporter {
	return &Exporter{
		source: source,
		engine: engine,
	}
}

// Export snapshots the session and message totals, derives the average
// messages per session (0 for zero sessions), and returns the noisy result
// of privatizing all three values with sensitivity 1.0.
func (e *Exporter) Export() map[string]any {
	sessions, messages := e.source.Totals()

	avg := 0.0
	if sessions > 0 {
		avg = float64(messages) / float64(sessions)
	}

	return e.engine.Privatize(map[string]any{
		"total_sessions":           sessions,
		"total_messages":           messages,
		"avg_messages_per_session": avg,
	})
}
