// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the LINE webhook endpoint, and the small
// operational API (version, usage statistics). Cross-cutting concerns such as
// request tracing and access logging are handled in this package before
// requests are delegated to the service layer.
package http
