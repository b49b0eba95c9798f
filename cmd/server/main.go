package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xautrade/meeting-server-go/internal/auth"
	"github.com/xautrade/meeting-server-go/internal/config"
	"github.com/xautrade/meeting-server-go/internal/database"
	"github.com/xautrade/meeting-server-go/internal/handler"
	"github.com/xautrade/meeting-server-go/internal/middleware"
	"github.com/xautrade/meeting-server-go/internal/redis"
	"github.com/xautrade/meeting-server-go/internal/repository"
	"github.com/xautrade/meeting-server-go/internal/service"
	"github.com/xautrade/meeting-server-go/internal/zoom"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	isProduction := os.Getenv("FLY_APP_NAME") != ""
	if err := cfg.Validate(isProduction); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	if err := db.EnsureSchema(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}
	if err := db.SeedGeo(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to seed reference data")
	}
	cancel()
	log.Info().Msg("database ready")

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("redis connected")
	}

	userRepo := repository.NewUserRepository(db.DB)
	geoRepo := repository.NewGeoRepository(db.DB)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
	zoomClient := zoom.NewClient(zoom.Config{
		AccountID:    cfg.ZoomAccountID,
		ClientID:     cfg.ZoomClientID,
		ClientSecret: cfg.ZoomClientSecret,
		UserID:       cfg.ZoomUserID,
	})

	accountService := service.NewAccountService(userRepo, geoRepo, tokens, cfg.BcryptCost)

	// A typed-nil *redis.Client inside the interface would defeat the
	// service's nil check, so only assign when redis is configured.
	var geoCache service.GeoCache
	if redisClient != nil {
		geoCache = redisClient
	}
	geoService := service.NewGeoService(geoRepo, geoCache, cfg.GeoCacheTTL())
	meetingService := service.NewMeetingService(zoomClient)

	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	authHandler := handler.NewAuthHandler(accountService, geoService)
	meetingHandler := handler.NewMeetingHandler(meetingService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	r.Mount("/", authHandler.Routes())

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Handler)
		r.Post("/create-meeting/", meetingHandler.Create)
		r.Get("/meetings", meetingHandler.List)
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
