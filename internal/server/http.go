package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/xmppfed/go-keyhub/internal/app"
	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/logger"
)

// httpServer wraps net/http's Server with the Server lifecycle contract.
type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	handler := router
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(router, cfg.RequestTimeout, app.MsgRequestTimedOut)
	}

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler,
		},
		logger: log,
	}
}

// RunServer blocks serving requests until Shutdown is called or the
// listener fails.
func (h *httpServer) RunServer() {
	h.logger.Info().Str("address", h.server.Addr).Msg("http server listening")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("http server stopped unexpectedly")
	}
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to finish.
func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("http server shutdown ended with error")
	}
}
