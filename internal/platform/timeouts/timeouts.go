// Package timeouts defines shared timeout constants used by the man3
// commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// AssessorRequest caps one round trip to the hosted model.
const AssessorRequest = 60 * time.Second

// WebSocketWrite caps a single websocket frame write.
const WebSocketWrite = 10 * time.Second

// WebSocketPong is how long a websocket peer may stay silent before the
// connection is dropped.
const WebSocketPong = 60 * time.Second
