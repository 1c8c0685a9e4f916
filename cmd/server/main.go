// Package main runs the meet & greet booking API: the event catalog plus the
// booking and registration form endpoints, with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oceangram11/bartlett-connect-hub-1/config"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/booking"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/catalog"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/mailer"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/middleware"
	"github.com/oceangram11/bartlett-connect-hub-1/internal/registration"
	"github.com/oceangram11/bartlett-connect-hub-1/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// Single-sourced immutable catalog, loaded once and shared by reference.
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("events", cat.Len()))

	sender := mailer.NewClient(cfg.Email, logger)

	catalogHandler := catalog.NewHandler(cat)
	bookingHandler := booking.NewHandler(cat, sender, logger)
	registrationHandler := registration.NewHandler(registration.NewService(sender, logger), logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	router.GET("/events", catalogHandler.List)
	router.GET("/events/:id", catalogHandler.GetByID)
	router.POST("/bookings", bookingHandler.Create)
	router.POST("/registrations", registrationHandler.Create)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
