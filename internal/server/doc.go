// Package server wires and runs the application's inbound transport.
//
// It provides orchestration for the HTTP server and the background worker
// lifecycles, including startup, signal handling, and graceful shutdown.
package server
