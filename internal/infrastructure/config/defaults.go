package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRunLockTTL      = 5 * time.Minute
	DefaultPGMaxConns      = 4
	DefaultPGMinConns      = 1
	DefaultPGMaxIdle       = 2 * time.Minute
	DefaultPGPingInterval  = 250 * time.Millisecond
	DefaultPGPingWait      = 15 * time.Second
	DefaultHistoryLimit    = 10
)
