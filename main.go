package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"connectfit-backend/auth"
	"connectfit-backend/config"
	"connectfit-backend/controllers"
	"connectfit-backend/insight"
	"connectfit-backend/media"
	"connectfit-backend/routes"
	"connectfit-backend/store"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	logger, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closer, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open persistence driver", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to close persistence driver", zap.Error(err))
		}
	}()
	st := store.New(ctx, kv)

	gate, err := auth.NewGate(cfg.AdminPasscode, cfg.PasetoSecretKey, auth.DefaultTTL)
	if err != nil {
		logger.Fatal("failed to initialize admin gate", zap.Error(err))
	}
	logger.Warn("admin access is protected by a shared passcode only, this is not user authentication")

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, insights will return the fallback text")
	}
	writer := insight.NewService(insight.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiAPIKey))

	ctrl := &controllers.Controller{
		Store:    st,
		Gate:     gate,
		Insights: insight.NewCoordinator(writer, 30*time.Second),
		Writer:   writer,
		Driver:   cfg.StoreDriver,
	}
	if cfg.CloudinaryURL != "" {
		up, err := media.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			logger.Fatal("failed to initialize Cloudinary", zap.Error(err))
		}
		ctrl.Uploader = up
		logger.Info("Cloudinary image uploads enabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Setup(ctrl, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", fmt.Sprintf("http://localhost:%s", cfg.Port)),
			zap.String("store", cfg.StoreDriver),
			zap.String("environment", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
