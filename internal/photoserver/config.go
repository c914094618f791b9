package photoserver

import "time"

// Config holds configuration for the photo server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// FixturesPath is a YAML fixture file. Empty serves generated photos.
	FixturesPath string

	// Latency delays every response.
	Latency time.Duration

	// FailStatus, when non-zero, answers every request with this status.
	FailStatus int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Addr: ":8089"}
}
