package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 60 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for health checks
const DBPingTimeout = 5 * time.Second

// Zoom API client settings. The provider calls are synchronous with no retry,
// so the timeout is the only bound on request latency.
const (
	ZoomHTTPTimeout = 10 * time.Second

	// Meetings are always created as one-hour scheduled meetings.
	MeetingDurationMinutes = 60

	// Listing reads a single page; entries beyond the first page are not fetched.
	MeetingListPageSize = 100
)
