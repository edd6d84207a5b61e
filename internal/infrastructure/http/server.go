package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/infrastructure/http/handlers"
)

const shutdownTimeout = 5 * time.Second

// Server runs the ops router in the background next to the console.
type Server struct {
	addr string
	e    *echo.Echo
	log  zerolog.Logger
}

func NewServer(addr string, log zerolog.Logger, checks ...handlers.Check) *Server {
	return &Server{addr: addr, e: NewRouter(log, checks...), log: log}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() *echo.Echo {
	return s.e
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("ops server listening")
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			s.log.Error().Err(err).Msg("ops server stopped")
		}
	}()

	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn().Err(err).Msg("ops server shutdown")
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.e.Shutdown(ctx)
}
