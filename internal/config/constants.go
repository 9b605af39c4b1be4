package config

// Application identity and storage.
const (
	AppName           = "zenith"
	DBFileName        = "zenith.db"
	ConfigFileName    = "config.yaml"
	SeedFileName      = "seed.yaml"
	DefaultTargetYear = 2026
	DefaultTheme      = "Default"

	// DefaultShareBaseURL is where the web viewer is served during development.
	DefaultShareBaseURL = "http://localhost:5173/"
)

// Check-in defaults.
const (
	// CheckInValue is the amount recorded by a single toggle.
	CheckInValue = 1.0

	// MinPassphraseLength guards encrypted backups.
	MinPassphraseLength = 8

	MaxPassphraseAttempts = 3
)

// Environment variable prefix for every config key (ZENITH_TARGET_YEAR, ...).
const EnvPrefix = "ZENITH"
