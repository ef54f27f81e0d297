package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/frontandrew/drivesure/internal/delivery/http"
	ai "github.com/frontandrew/drivesure/internal/infrastructure/assistant"
	"github.com/frontandrew/drivesure/internal/pkg/config"
	"github.com/frontandrew/drivesure/internal/pkg/hash"
	"github.com/frontandrew/drivesure/internal/pkg/jwt"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository/cached"
	"github.com/frontandrew/drivesure/internal/repository/kv"
	"github.com/frontandrew/drivesure/internal/repository/kvstore"
	"github.com/frontandrew/drivesure/internal/usecase/assistant"
	"github.com/frontandrew/drivesure/internal/usecase/auth"
	"github.com/frontandrew/drivesure/internal/usecase/booking"
	"github.com/frontandrew/drivesure/internal/usecase/driver"
	"github.com/frontandrew/drivesure/internal/usecase/traffic"
	"github.com/frontandrew/drivesure/internal/usecase/verification"
	"golang.org/x/sync/errgroup"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log, err := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	log.Info("Starting DriveSure API server", map[string]interface{}{
		"storage": cfg.Storage.Driver,
		"cache":   cfg.Storage.Cache,
		"latency": cfg.Latency.Scale,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// Подключение к хранилищу
	// =========================================================================

	var store kv.Store
	store, err = kv.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open storage", map[string]interface{}{
			"driver": cfg.Storage.Driver,
			"error":  err,
		})
	}

	if cfg.Storage.Cache == "redis" {
		cache, err := kv.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address(),
				"error":   err,
			})
		}
		store = cached.NewStore(store, cache, log)
		log.Info("Redis cache enabled", map[string]interface{}{
			"address": cfg.Redis.Address(),
		})
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close storage", map[string]interface{}{
				"error": err,
			})
		}
	}()

	log.Info("Storage opened", map[string]interface{}{
		"driver": cfg.Storage.Driver,
	})

	// =========================================================================
	// Создание repositories
	// =========================================================================

	accountRepo := kvstore.NewAccountRepository(store)
	userDataRepo := kvstore.NewUserDataRepository(store)

	// =========================================================================
	// Создание ИИ клиента
	// =========================================================================

	var aiClient ai.Client
	if cfg.Assistant.Enabled() {
		aiClient, err = ai.NewGeminiClient(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.Timeout)
		if err != nil {
			log.Warn("AI assistant is not available", map[string]interface{}{
				"error": err,
			})
			aiClient = nil
		} else {
			log.Info("AI assistant enabled", map[string]interface{}{
				"model": cfg.Assistant.Model,
			})
		}
	} else {
		log.Warn("GEMINI_API_KEY is not set, AI assistant is offline")
	}

	// =========================================================================
	// Создание use case services
	// =========================================================================

	sim := latency.New(cfg.Latency.Scale)
	tokenService := jwt.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.AccessExpiry)
	hasher := hash.NewHasher(cfg.Auth.BcryptCost)

	// Сервер не хранит "текущего пользователя": сессия определяется токеном
	authService := auth.NewService(accountRepo, userDataRepo, nil, tokenService, hasher, sim, log)
	driverService := driver.NewService(userDataRepo, sim, log)
	bookingService := booking.NewService(userDataRepo, sim, log)
	trafficService := traffic.NewService(sim)
	verificationService := verification.NewService(sim, log)
	assistantService := assistant.NewService(aiClient, log)

	// =========================================================================
	// Создание HTTP handlers и router
	// =========================================================================

	router := deliveryHTTP.NewRouter(
		deliveryHTTP.NewAuthHandler(authService, log),
		deliveryHTTP.NewDriverHandler(driverService, log),
		deliveryHTTP.NewBookingHandler(bookingService, log),
		deliveryHTTP.NewTrafficHandler(trafficService, assistantService, log),
		deliveryHTTP.NewOfficerHandler(verificationService, log),
		deliveryHTTP.NewAssistantHandler(assistantService, cfg.CORS.AllowedOrigins, log),
		authService,
		cfg,
		log,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера и graceful shutdown
	// =========================================================================

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		// Даем серверу 30 секунд на graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err,
			})
			return srv.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server error", map[string]interface{}{
			"error": err,
		})
		stop()
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
}
