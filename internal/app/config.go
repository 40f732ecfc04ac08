package app

// Config holds all the necessary configuration for an App instance.
type Config struct {
	// ManifestsPath optionally points at additional .hcl manifest files to
	// validate beyond the ones embedded in the compiled-in modules.
	ManifestsPath string

	LogFormat string
	LogLevel  string

	// ObservabilityPort serves /healthz and /metrics when > 0.
	ObservabilityPort int
}

// NewConfig normalizes a Config. Reserved for field validation as options
// grow; currently every zero value is acceptable.
func NewConfig(cfg Config) (*Config, error) {
	return &cfg, nil
}
