package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	ai "github.com/frontandrew/drivesure/internal/infrastructure/assistant"
	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/i18n"
	"github.com/frontandrew/drivesure/internal/pkg/config"
	"github.com/frontandrew/drivesure/internal/pkg/hash"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository/kv"
	"github.com/frontandrew/drivesure/internal/repository/kvstore"
	"github.com/frontandrew/drivesure/internal/usecase/assistant"
	"github.com/frontandrew/drivesure/internal/usecase/auth"
	"github.com/frontandrew/drivesure/internal/usecase/booking"
	"github.com/frontandrew/drivesure/internal/usecase/driver"
	"github.com/frontandrew/drivesure/internal/usecase/traffic"
	"github.com/frontandrew/drivesure/internal/usecase/verification"
)

// errNotLoggedIn - подсказка для команд, требующих входа
var errNotLoggedIn = errors.New("not logged in, run `drivesure login` first")

// errOffline - команда требует сети, а CLI запущен с --offline
var errOffline = errors.New("unavailable with --offline")

// options - глобальные флаги CLI
type options struct {
	lang    string
	offline bool
	dbPath  string
	verbose bool
}

// app - все зависимости CLI
// Данные хранятся на устройстве (SQLite), вошедший пользователь запоминается между запусками
type app struct {
	cfg   *config.Config
	log   logger.Logger
	store   kv.Store
	lang    i18n.Language
	offline bool

	auth         *auth.Service
	driver       *driver.Service
	booking      *booking.Service
	traffic      *traffic.Service
	verification *verification.Service
	assistant    *assistant.Service
}

// newApp собирает зависимости
func newApp(ctx context.Context, opts *options, stderr io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// CLI по умолчанию хранит данные в файле SQLite
	if os.Getenv("STORAGE_DRIVER") == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if opts.dbPath != "" {
		cfg.Storage.Driver = "sqlite"
		cfg.Storage.SQLitePath = opts.dbPath
	}

	level := "warn"
	if os.Getenv("LOG_LEVEL") != "" {
		level = cfg.Logger.Level
	}
	if opts.verbose {
		level = "debug"
	}
	log := logger.NewWithWriter(level, "console", stderr)

	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	lang := i18n.Negotiate(opts.lang, os.Getenv("LANG"))

	var aiClient ai.Client
	if !opts.offline && cfg.Assistant.Enabled() {
		aiClient, err = ai.NewGeminiClient(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.Timeout)
		if err != nil {
			log.Warn("AI assistant is not available", map[string]interface{}{
				"error": err,
			})
			aiClient = nil
		}
	}

	sim := latency.New(cfg.Latency.Scale)
	accountRepo := kvstore.NewAccountRepository(store)
	userDataRepo := kvstore.NewUserDataRepository(store)
	sessionRepo := kvstore.NewSessionRepository(store)

	return &app{
		cfg:   cfg,
		log:   log,
		store:   store,
		lang:    lang,
		offline: opts.offline,

		// Токены не нужны: вошедший пользователь хранится локально
		auth:         auth.NewService(accountRepo, userDataRepo, sessionRepo, nil, hash.NewHasher(cfg.Auth.BcryptCost), sim, log),
		driver:       driver.NewService(userDataRepo, sim, log),
		booking:      booking.NewService(userDataRepo, sim, log),
		traffic:      traffic.NewService(sim),
		verification: verification.NewService(sim, log),
		assistant:    assistant.NewService(aiClient, log),
	}, nil
}

// Close закрывает хранилище
func (a *app) Close() error {
	return a.store.Close()
}

// t возвращает строку интерфейса на выбранном языке
func (a *app) t(key string) string {
	return i18n.T(a.lang, key)
}

// requireOnline отказывает командам, которым нужна сеть
func (a *app) requireOnline() error {
	if a.offline {
		return fmt.Errorf("%s: %w", a.t("offline"), errOffline)
	}
	return nil
}

// currentAccount возвращает вошедшего пользователя
func (a *app) currentAccount(ctx context.Context) (*domain.Account, error) {
	account, err := a.auth.LoggedInUser(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			return nil, errNotLoggedIn
		}
		return nil, err
	}
	return account, nil
}

// currentDriver возвращает вошедшего водителя
func (a *app) currentDriver(ctx context.Context) (*domain.Account, error) {
	account, err := a.currentAccount(ctx)
	if err != nil {
		return nil, err
	}
	if !account.IsDriver() {
		return nil, fmt.Errorf("this command is for drivers, %s is logged in as %s", account.Email, account.Role)
	}
	return account, nil
}

// currentOfficer возвращает вошедшего инспектора
func (a *app) currentOfficer(ctx context.Context) (*domain.Account, error) {
	account, err := a.currentAccount(ctx)
	if err != nil {
		return nil, err
	}
	if !account.IsOfficer() {
		return nil, fmt.Errorf("this command is for officers, %s is logged in as %s", account.Email, account.Role)
	}
	return account, nil
}
