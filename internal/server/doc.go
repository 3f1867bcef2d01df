// Package server runs the hub: the HTTP server and its background workers,
// with startup, signal handling and graceful shutdown.
package server
