// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package server

import (
	"context"
	"net/http"

	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/logger"
)

// server runs the inbound HTTP transport and coordinates its shutdown.
type server struct {
	httpServer Server
	logger     *logger.Logger
}

// NewServer builds the transport listener for the configured address.
func NewServer(router http.Handler, cfg config.Server, log *logger.Logger) (*server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, log),
		logger:     log,
	}, nil
}

// Run serves requests until ctx is cancelled, then shuts the listener
// down gracefully and returns once in-flight requests have drained.
func (s *server) Run(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})

	go func() {
		<-ctx.Done()
		s.logger.Info().Msg("shutdown signal received")
		s.httpServer.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.httpServer.RunServer()
	<-idleConnectionsClosed

	s.logger.Info().Msg("server shut down gracefully")
}
