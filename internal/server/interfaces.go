package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received and then
	// shuts every transport down gracefully.
	RunServer() error

	// Run serves until ctx is cancelled or a transport fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown(ctx context.Context) error
}
