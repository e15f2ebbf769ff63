package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/handler"
)

// ModelStatus reports whether a trained snapshot is published. The
// health endpoint stays alive either way.
type ModelStatus interface {
	Ready() bool
}

// Pinger is the storage liveness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPServer struct {
	echo        *echo.Echo
	modelStatus ModelStatus
	db          Pinger
}

func NewHTTPServer(
	batchHandler *handler.BatchHTTPHandler,
	modelStatus ModelStatus,
	db Pinger,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo:        e,
		modelStatus: modelStatus,
		db:          db,
	}

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/batches", batchHandler.Upload())
	e.POST("/api/v1/batches/upload", batchHandler.UploadCSV())
	e.POST("/api/v1/batches/:id/detect", batchHandler.Detect())
	e.GET("/api/v1/batches/:id/summary", batchHandler.Summary())
	e.GET("/api/v1/stats", batchHandler.Stats())
	e.POST("/api/v1/model/train", batchHandler.Train())

	return server
}

// healthCheck is a liveness probe independent of model state: an
// untrained model degrades the report but never fails it.
func (s *HTTPServer) healthCheck(c echo.Context) error {
	dbStatus := "connected"
	if s.db != nil {
		if err := s.db.Ping(c.Request().Context()); err != nil {
			dbStatus = "disconnected"
		}
	}

	modelLoaded := s.modelStatus != nil && s.modelStatus.Ready()

	status := "healthy"
	if dbStatus != "connected" || !modelLoaded {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":       status,
		"service":      "fraudshield",
		"database":     dbStatus,
		"model_loaded": modelLoaded,
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
