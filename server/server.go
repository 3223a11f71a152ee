package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"reldb/database"
	"reldb/replication"
)

// Config holds the server's listen settings.
type Config struct {
	Port int
}

// Server exposes a database instance over HTTP. A primary accepts any
// statement; a replica serves reads and replication traffic only.
type Server struct {
	config Config
	router *echo.Echo
	db     *database.Database
	repl   *replication.Manager
}

// New wires the routes and middleware around an engine instance.
func New(config Config, db *database.Database, repl *replication.Manager) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Logger.SetLevel(log.INFO)

	s := &Server{
		config: config,
		router: e,
		db:     db,
		repl:   repl,
	}

	e.POST("/execute", s.handleExecute)
	e.GET("/ping", s.handlePing)
	e.GET("/tables", s.handleTables)
	e.GET("/replication/events", s.handleEvents)
	e.GET("/replication/checksum", s.handleChecksum)
	e.POST("/replication/apply", s.handleApply)
	e.POST("/replication/register", s.handleRegister)

	return s
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.config.Port)
		if err := s.router.Start(addr); err != nil && err != http.ErrServerClosed {
			s.router.Logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.router.Shutdown(ctx)
}
