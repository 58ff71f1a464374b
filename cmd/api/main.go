package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/NomanKhan13/focusTube/internal/adapters/auth/jwt"
	"github.com/NomanKhan13/focusTube/internal/adapters/auth/redis"
	"github.com/NomanKhan13/focusTube/internal/adapters/eventbroker/nats"
	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi"
	commenthandler "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/comment"
	likehandler "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/like"
	userhandler "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/user"
	videohandler "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/video"
	"github.com/NomanKhan13/focusTube/internal/adapters/repository/postgres"
	"github.com/NomanKhan13/focusTube/internal/adapters/sanitizer"
	"github.com/NomanKhan13/focusTube/internal/adapters/staging"
	"github.com/NomanKhan13/focusTube/internal/adapters/storage/minio"
	"github.com/NomanKhan13/focusTube/internal/config"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/NomanKhan13/focusTube/internal/core/service/cleanup"
	commentservice "github.com/NomanKhan13/focusTube/internal/core/service/comment"
	likeservice "github.com/NomanKhan13/focusTube/internal/core/service/like"
	userservice "github.com/NomanKhan13/focusTube/internal/core/service/user"
	videoservice "github.com/NomanKhan13/focusTube/internal/core/service/video"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	mediaStore, err := minio.NewAdapter(ctx, cfg.Media, logger)
	if err != nil {
		logger.Error("failed to init media store", "error", err)
		os.Exit(1)
	}

	stagingArea, err := staging.NewDiskStagingArea(cfg.Upload.StagingDir)
	if err != nil {
		logger.Error("failed to init staging area", "error", err)
		os.Exit(1)
	}

	//auth
	authProvider := jwt.NewProvider(cfg.Auth)
	tokenStore, err := redis.NewTokenStore(ctx, cfg.Redis, cfg.Auth.RefreshTokenTTL)
	if err != nil {
		logger.Error("failed to init token store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := tokenStore.Close(); err != nil {
			logger.Error("failed to close token store", "error", err)
		}
	}()

	//events
	eventPublisher, err := nats.NewPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init event publisher", "error", err)
		os.Exit(1)
	}
	defer eventPublisher.Close()

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)
	htmlSanitizer := sanitizer.NewAdapter()

	//services
	videoService := videoservice.NewVideoService(unitOfWork, mediaStore, stagingArea, htmlSanitizer, eventPublisher, logger)
	userService := userservice.NewUserService(unitOfWork, authProvider, tokenStore, logger)
	commentService := commentservice.NewCommentService(unitOfWork, htmlSanitizer, logger)
	likeService := likeservice.NewLikeService(unitOfWork, logger)
	cleanupService := cleanup.NewCleanupService(stagingArea, cfg.Upload.StagingTTL, logger)

	//http
	secureCookies := cfg.Env.Env == "prod"
	userHandler := userhandler.NewUserHandlerV1(userService, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL, secureCookies, logger)
	videoHandler := videohandler.NewVideoHandlerV1(videoService, stagingArea, cfg.Upload.MaxVideoSize, cfg.Upload.MaxThumbnailSize, logger)
	commentHandler := commenthandler.NewCommentHandlerV1(commentService, logger)
	likeHandler := likehandler.NewLikeHandlerV1(likeService, logger)

	router := chi.NewRouter(logger, authProvider, userHandler, videoHandler, commentHandler, likeHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Upload.CleanupEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			err := service.SweepStaging(ctx, time.Now())
			if err != nil {
				logger.Error("failed to sweep staging area", "error", err)
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
