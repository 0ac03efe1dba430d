package constants

import "time"

const (
	// Merged trending pages are reused for this long before providers are
	// fanned out again.
	TrendingCacheTTL = 30 * time.Second

	// Outbound platform API requests
	PlatformRequestTimeout = 15 * time.Second

	// Background poller cadence (cron spec) and per-platform rate limits
	PollCronSpec        = "@every 1m"
	PollRateLimit int64 = 5 // requests per second
	PollRateBurst int64 = 2

	// HTTP server shutdown grace period
	ShutdownTimeout = 10 * time.Second
)
