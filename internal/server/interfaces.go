package server

import "context"

// Server defines the lifecycle of the hub process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error
}
