package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A full refetch may walk many rate-limited pages before responding.
	writeTimeout = 2 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
