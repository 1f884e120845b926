// Package stats computes aggregate usage statistics over the session store
// and passes them through the differential privacy engine before they are
// returned to callers. The exporter reads derived counts only; it never sees
// individual messages.
//
// Usage:
//
//	import (
//		"github.com/dilekatharuki/privacycore/core/dp"
//		"github.com/dilekatharuki/privacycore/core/session"
//		"github.com/dilekatharuki/privacycore/core/stats"
//	)
//
//	store := session.NewStore()
//	engine, _ := dp.NewEngine(1.0, 1e-5)
//
//	noisy := stats.NewExporter(store, engine).Export()
//	// map with keys: total_sessions, total_messages, avg_messages_per_session
package stats
