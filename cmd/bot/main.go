package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wortquiz/internal/config"
	"wortquiz/internal/handler"
	"wortquiz/internal/middleware"
	"wortquiz/internal/quiz"
	"wortquiz/internal/repository"
	"wortquiz/internal/repository/postgres"
	"wortquiz/internal/repository/statsfile"
	"wortquiz/internal/service"
	"wortquiz/internal/vocab"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Wortquiz Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Load vocabulary
	items, err := vocab.Load(cfg.VocabPath)
	if err != nil {
		logger.Fatal("Failed to load vocabulary", zap.Error(err))
	}
	if len(items) == 0 {
		logger.Fatal("Vocabulary file contains no words", zap.String("path", cfg.VocabPath))
	}

	logger.Info("Vocabulary loaded",
		zap.String("path", cfg.VocabPath),
		zap.Int("words", len(items)),
	)

	// Pick the stats storage backend
	statsRepo, cleanup, err := buildStatsRepo(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to set up stats storage", zap.Error(err))
	}
	defer cleanup()

	// Initialize services
	statsService := service.NewStatsService(statsRepo, logger)
	statsService.Load()

	authService := service.NewAuthService(cfg.BotPassword)

	engine := quiz.NewEngine(items, statsService, logger, quiz.Options{
		AdvanceDelay: cfg.AdvanceDelay,
	})

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.AuthMiddleware(authService, logger))

	// Initialize handler and hook the deferred-advance notifications
	h := handler.NewHandler(bot, authService, engine, logger)
	h.RegisterHandlers()
	engine.SetNotify(h.PushQuestion)

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// buildStatsRepo wires the configured stats backend; the returned cleanup
// closes whatever the backend holds open
func buildStatsRepo(cfg *config.Config, logger *zap.Logger) (repository.StatsRepository, func(), error) {
	switch cfg.Stats.Backend {
	case config.BackendPostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Using postgres stats backend")
		return postgres.NewStatsRepo(db), func() { db.Close() }, nil

	default:
		logger.Info("Using file stats backend", zap.String("path", cfg.Stats.Path))
		return statsfile.New(cfg.Stats.Path), func() {}, nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
