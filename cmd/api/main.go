package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/container"
	"github.com/saulo-duarte/adaptive-tutor/internal/router"
)

// @title       Adaptive Tutor API
// @version     1.0
// @description Curriculum-grounded tutoring chat and adaptive quizzes.
// @BasePath    /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := config.Load()
	c, err := container.New(ctx, settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to start")
	}

	srv := &http.Server{
		Addr: ":" + settings.Port,
		Handler: router.New(router.RouterConfig{
			ChatHandler:    c.ChatContainer.Handler,
			QuizHandler:    c.QuizContainer.Handler,
			CorsOrigin:     settings.CorsOrigin,
			RequestTimeout: settings.RequestTimeout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.WithField("addr", srv.Addr).Info("AI tutor API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server error")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
