// Package dp implements calibrated noise mechanisms for differential privacy.
// An Engine is constructed once with a privacy budget (epsilon, delta) and
// adds Laplace or Gaussian noise to numeric values before they leave the
// process boundary.
//
// # Basic Usage
//
//	import "github.com/dilekatharuki/privacycore/core/dp"
//
//	engine, err := dp.NewEngine(1.0, 1e-5)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	noisy := engine.LaplaceNoise(42.0, 1.0)
//
// Privatize applies Laplace noise to every numeric value in a statistics map,
// passing non-numeric values through unchanged:
//
//	stats := map[string]any{"total_sessions": 10, "region": "eu"}
//	noisy := engine.Privatize(stats)
//
// # Mechanisms
//
// LaplaceNoise draws from Laplace(0, sensitivity/epsilon), the standard
// mechanism for epsilon-differential privacy over a numeric query of given L1
// sensitivity. GaussianNoise draws from Normal(0, sigma) with
// sigma = sensitivity * sqrt(2*ln(1.25/delta)) / epsilon, the standard
// (epsilon, delta)-approximate mechanism. All arithmetic is float64.
//
// # Randomness
//
// By default noise is drawn from the process-wide generator, which is safe
// for concurrent use. Tests can inject a deterministic source:
//
//	engine, _ := dp.NewEngine(1.0, 1e-5, dp.WithSource(rand.NewPCG(1, 2)))
//
// An injected source is serialized internally, so the engine remains safe for
// concurrent draws either way.
//
// # Budget Accounting
//
// The engine does not track cumulative budget consumption: every call is
// privatized independently against the full epsilon. Repeated exports of the
// same statistic therefore weaken the formal guarantee; callers who need
// composition bounds must account for spent budget themselves.
package dp
