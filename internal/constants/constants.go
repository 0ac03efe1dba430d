// Package constants defines application-wide constants and default values.
package constants

const (
	// Service metadata
	ServiceName    = "streamsub"
	ServiceVersion = "1.0.0"

	// Default configuration values
	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	// Aggregation cache settings
	TrendingCacheCapacity = 256
)

// Placeholder title used when a platform reports a live broadcast without one.
const UntitledStream = "Untitled stream"
