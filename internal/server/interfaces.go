package server

import "context"

// Server defines the lifecycle of the stub document server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the listener
	// fails, then shuts down gracefully. A clean shutdown returns nil.
	RunServer(ctx context.Context) error
	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
