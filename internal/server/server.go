package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/config"
)

// Server wraps the HTTP server around the router.
type Server struct {
	http *http.Server
}

// New creates a server for the given router.
func New(cfg *config.Config, router *gin.Engine) *Server {
	return &Server{
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	log.Printf("Replate API listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
