// Package server provides HTTP server lifecycle management.
package server

import (
	"context"
	"net"
	"net/http"
	"time"
)

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
// No WriteTimeout: a TV status query may legitimately hold the response
// for the CEC bridge's full wait budget.
type Server struct {
	httpServer *http.Server
}

// Run starts the HTTP server on the given host and port. It blocks until
// the listener fails or Shutdown is called.
func (s *Server) Run(host, port string, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to
// complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
