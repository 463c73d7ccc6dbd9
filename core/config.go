package core

// Config holds the front-end's environment-derived settings. These are
// simple toggles around the lifecycle core, not features: the profile path
// selects what the engine runs, everything else tunes diagnostics.
type Config struct {
	// ProfilePath is the engine profile handed to the main operation.
	ProfilePath string

	// LogFile is the path of the rotating structured log file.
	LogFile string

	// DevMode enables human-readable console logging at debug level.
	DevMode bool
}

// LoadConfig reads configuration from the environment. Missing variables
// fall back to defaults; nothing here is required, so LoadConfig cannot
// fail.
func LoadConfig() *Config {
	return &Config{
		ProfilePath: GetEnvOrDefault("PKGUP_PROFILE", "pkgup.yaml"),
		LogFile:     GetEnvOrDefault("PKGUP_LOG_FILE", "pkgup.log"),
		DevMode:     ParseBoolEnv("PKGUP_DEV_MODE", false),
	}
}
