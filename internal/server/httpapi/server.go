// Package httpapi exposes the careerpath backend over HTTP: a gin router
// under /api with request logging, CORS and Prometheus metrics.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/careerpath/internal/logging"
)

type Server struct {
	address         string
	shutdownTimeout time.Duration
	handler         http.Handler
	logger          logging.Logger
}

func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger, router *gin.Engine) *Server {
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		handler:         router,
		logger:          l.With("module", "http_server"),
	}
}

// Run serves until ctx is canceled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
