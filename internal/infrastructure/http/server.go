package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Server owns the listening socket for an echo instance.
type Server struct {
	e   *echo.Echo
	log zerolog.Logger
}

func NewServer(e *echo.Echo, addr string, log zerolog.Logger) *Server {
	e.HideBanner = true
	e.HidePort = true
	e.Server = &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return &Server{e: e, log: log}
}

// Start serves until Shutdown is called. It returns nil on a clean shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.e.Server.Addr).Msg("http server listening")
	if err := s.e.StartServer(s.e.Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.e.Shutdown(ctx)
}
