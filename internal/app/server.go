package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/config"
	"github.com/tutorhive/tutor_marketplace/internal/controller/handlers"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers все HTTP-хендлеры API
type Handlers struct {
	Bookings     *handlers.BookingHandler
	Tutors       *handlers.TutorHandler
	Students     *handlers.StudentHandler
	Availability *handlers.AvailabilityHandler
}

// Server HTTP-сервер API
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(cfg *config.Config, h *Handlers, logger *zap.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		handlers.Recovery(logger),
		handlers.RequestID(),
		handlers.RequestLogger(logger),
		cors.New(corsConfig(cfg)),
	)

	router.GET("/health", handlers.Health)

	v1 := router.Group("/v1")
	{
		v1.GET("/tutors", h.Tutors.List)
		v1.POST("/tutors", h.Tutors.Create)
		v1.POST("/tutors/:tutor_id/availability", h.Tutors.AddSlot)
		v1.GET("/tutors/:tutor_id/availability", h.Tutors.ListSlots)

		v1.GET("/students", h.Students.List)
		v1.POST("/students", h.Students.Create)

		v1.POST("/bookings", h.Bookings.Create)
		v1.GET("/bookings", h.Bookings.ListByStudent)
		v1.GET("/bookings/recent", h.Bookings.ListRecent)

		v1.GET("/availability", h.Availability.Overview)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.HTTPPort,
			Handler: router,
		},
		logger: logger,
	}
}

// Run запускает сервер и останавливает его при отмене контекста.
// Shutdown ждёт завершения активных запросов не дольше shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}

	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}

	return corsCfg
}
