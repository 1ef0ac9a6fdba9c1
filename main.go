package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netflix-clone-backend/config"
	"netflix-clone-backend/data_access"
	"netflix-clone-backend/helper"
	"netflix-clone-backend/routes"
	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		hclog.Default().Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "netflix-api",
		Level:      hclog.LevelFromString(cfg.LogLevel),
		JSONFormat: cfg.IsProduction(),
	})
	logger.Info("configuration loaded", "env", cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongodb.Close(ctx); err != nil {
			logger.Warn("error closing MongoDB", "error", err)
		}
	}()

	indexCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	err = mongodb.EnsureIndexes(indexCtx)
	cancel()
	if err != nil {
		return err
	}
	logger.Info("connected to MongoDB", "database", cfg.DBName)

	// Initialize repositories and upstream client
	userRepo := data_access.NewUserRepository(mongodb)
	tmdb := data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL, cfg.TMDBTimeout)

	// Initialize services
	tokens := services.NewTokenManager(cfg.JWTSecret, services.SessionTTL)
	router, err := routes.NewRouter(routes.Services{
		Auth:     services.NewAuthService(userRepo, tokens, logger),
		Content:  services.NewContentService(tmdb, helper.RandomIndex),
		Search:   services.NewSearchService(tmdb, userRepo, logger),
		Bookmark: services.NewBookmarkService(userRepo, logger),
		Catalog:  services.NewCatalogService(tmdb),
	}, routes.Options{
		CookieName:   cfg.CookieName,
		CookieSecure: cfg.CookieSecure,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
