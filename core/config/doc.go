// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dilekatharuki/privacycore/core/config"
//
//	type PrivacyConfig struct {
//		Epsilon float64 `env:"PRIVACY_EPSILON" envDefault:"1.0"`
//		Delta   float64 `env:"PRIVACY_DELTA" envDefault:"0.00001"`
//		Salt    string  `env:"PRIVACY_HASH_SALT,required"`
//	}
//
//	func main() {
//		var cfg PrivacyConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 PrivacyConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 PrivacyConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so unrelated subsystems can each
// declare their own configuration struct.
package config
