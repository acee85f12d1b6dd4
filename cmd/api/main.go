package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/davidalonso/gamevault-backend/api/routes"
	"github.com/davidalonso/gamevault-backend/internal/auth"
	"github.com/davidalonso/gamevault-backend/internal/games"
	"github.com/davidalonso/gamevault-backend/internal/search"
	"github.com/davidalonso/gamevault-backend/internal/stats"
	"github.com/davidalonso/gamevault-backend/pkg/auth/session"
	"github.com/davidalonso/gamevault-backend/pkg/config"
	"github.com/davidalonso/gamevault-backend/pkg/db"
	"github.com/davidalonso/gamevault-backend/pkg/logger"
	"github.com/davidalonso/gamevault-backend/pkg/metrics"
	"github.com/davidalonso/gamevault-backend/pkg/migrate"
	"github.com/davidalonso/gamevault-backend/pkg/rawg"
	"github.com/davidalonso/gamevault-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		TxRunner:       dbClient,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	gamesRepo := games.NewRepository(dbClient.DB())
	gamesService, err := games.NewService(games.ServiceParams{Repo: gamesRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create games service", err)
		os.Exit(1)
	}

	statsService, err := stats.NewService(stats.ServiceParams{Games: gamesRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create stats service", err)
		os.Exit(1)
	}

	searchParams := search.ServiceParams{
		Cache:  search.NewCacheRepository(dbClient.DB()),
		Logger: logg,
	}
	if cfg.Catalog.Configured() {
		catalog, err := rawg.NewClient(
			cfg.Catalog.APIKey,
			rawg.WithBaseURL(cfg.Catalog.BaseURL),
			rawg.WithPageSize(cfg.Catalog.PageSize),
			rawg.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.Timeout}),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create catalog client", err)
			os.Exit(1)
		}
		searchParams.Catalog = catalog
	} else {
		logg.Warn(context.Background(), "catalog api key not set, search will degrade to manual entry")
	}

	searchService, err := search.NewService(searchParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create search service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	router := routes.NewRouter(routes.RouterParams{
		Config:         cfg,
		Logger:         logg,
		DB:             dbClient,
		Redis:          redisClient,
		SessionChecker: sessionManager,
		HTTPMetrics:    httpMetrics,
		AuthService:    authService,
		GamesService:   gamesService,
		SearchService:  searchService,
		StatsService:   statsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	logg.Info(ctx, "api server stopped")
}
