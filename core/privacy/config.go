package privacy

// Config holds the environment-driven settings for the privacy core. Load it
// through core/config:
//
//	var cfg privacy.Config
//	config.MustLoad(&cfg)
type Config struct {
	// Epsilon is the privacy budget for the default engine; smaller means
	// stronger privacy.
	Epsilon float64 `env:"PRIVACY_EPSILON" envDefault:"1.0"`

	// Delta is the failure probability used by the Gaussian mechanism.
	Delta float64 `env:"PRIVACY_DELTA" envDefault:"0.00001"`

	// HashSalt is mixed into user identifier hashes.
	HashSalt string `env:"PRIVACY_HASH_SALT" envDefault:""`

	// AuditLogPath, when set, appends audit entries as JSON lines to the
	// given file. Empty disables file output.
	AuditLogPath string `env:"PRIVACY_AUDIT_LOG" envDefault:""`
}
