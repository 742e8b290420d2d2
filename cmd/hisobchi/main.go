package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/hisobchi/hisobchi/internal/app"
	"github.com/hisobchi/hisobchi/internal/auth"
	"github.com/hisobchi/hisobchi/internal/balans"
	"github.com/hisobchi/hisobchi/internal/chiqim"
	"github.com/hisobchi/hisobchi/internal/eslatma"
	"github.com/hisobchi/hisobchi/internal/kirim"
	"github.com/hisobchi/hisobchi/internal/observability"
	"github.com/hisobchi/hisobchi/internal/platform/cache"
	"github.com/hisobchi/hisobchi/internal/platform/db"
	"github.com/hisobchi/hisobchi/internal/shared"
	"github.com/hisobchi/hisobchi/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "hisobchi_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager)

	kirimRepo := kirim.NewRepository(dbpool)
	kirimService := kirim.NewService(kirimRepo, cfg.Branches)
	kirimHandler := kirim.NewHandler(logger, kirimService)

	chiqimRepo := chiqim.NewRepository(dbpool)
	chiqimService := chiqim.NewService(chiqimRepo, cfg.Branches)
	chiqimHandler := chiqim.NewHandler(logger, chiqimService)

	balansService := balans.NewService(kirimRepo, chiqimRepo)
	snapshotStore := balans.NewSnapshotStore(redisClient, cfg.SnapshotTTL)
	balansHandler := balans.NewHandler(logger, balansService, snapshotStore)

	eslatmaRepo := eslatma.NewRepository(dbpool)
	eslatmaService := eslatma.NewService(eslatmaRepo)
	eslatmaHandler := eslatma.NewHandler(logger, eslatmaService)

	metrics := observability.NewMetrics()

	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
	inspector := asynq.NewInspector(redisOpts)
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobClient, err := jobs.NewClient(redisOpts)
	if err != nil {
		logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, jobClient, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessionManager,
		CSRFManager:    csrfManager,
		AuthHandler:    authHandler,
		KirimHandler:   kirimHandler,
		ChiqimHandler:  chiqimHandler,
		BalansHandler:  balansHandler,
		EslatmaHandler: eslatmaHandler,
		JobHandler:     jobHandler,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
