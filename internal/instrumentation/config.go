package instrumentation

// Config holds the configuration for OpenTelemetry instrumentation.
type Config struct {
	// ServiceName is the name of the service (default: tickctl)
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Enabled determines if metrics are collected at all (default: false).
	// Disabled instrumentation produces a no-op metrics recorder.
	Enabled bool
}

// DefaultConfig returns a Config with defaults for CLI usage.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "tickctl",
		ServiceVersion: "unknown",
		Enabled:        false,
	}
}
