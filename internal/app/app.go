package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/dugoutlabs/dugout/internal/config"
	"github.com/dugoutlabs/dugout/internal/domain/syncevent"
	"github.com/dugoutlabs/dugout/internal/infrastructure/repository/memory"
	"github.com/dugoutlabs/dugout/internal/infrastructure/repository/postgres"
	"github.com/dugoutlabs/dugout/internal/infrastructure/syncfeed"
	"github.com/dugoutlabs/dugout/internal/interfaces/httpapi"
	"github.com/dugoutlabs/dugout/internal/platform/logging"
	"github.com/dugoutlabs/dugout/internal/platform/resilience"
	"github.com/dugoutlabs/dugout/internal/usecase"
)

// App holds the wired service and everything that needs explicit teardown.
type App struct {
	Server *http.Server

	editor *usecase.EditorService
	db     *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger, platformLogger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if platformLogger == nil {
		platformLogger = logging.Default()
	}

	deps := usecase.EditorDeps{
		Logger:        platformLogger,
		AutosaveDelay: cfg.AutosaveDelay,
		Workers:       cfg.EditorWorkers,
	}

	var db *sqlx.DB
	if cfg.DBURL != "" {
		var err error
		db, err = openDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		deps.Roster = postgres.NewRosterRepository(db)
		deps.Lineup = postgres.NewLineupRepository(db)
		deps.Config = postgres.NewGameConfigRepository(db)
		logger.Info("storage ready", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))
	} else {
		deps.Roster = memory.NewRosterRepository(memory.SeedPlayers())
		deps.Lineup = memory.NewLineupRepository()
		deps.Config = memory.NewGameConfigRepository()
		logger.Info("storage ready", "backend", "memory")
	}

	deps.Publisher = buildPublisher(cfg, platformLogger, logger)

	editor, err := usecase.NewEditorService(deps)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("build editor service: %w", err)
	}

	handler := httpapi.NewHandler(editor, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.SyncToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		editor.Close()
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, editor: editor, db: db}, nil
}

// Close flushes pending editor saves and releases the database pool. The
// HTTP server is shut down by the caller first so no new sessions arrive
// while state is being flushed.
func (a *App) Close() error {
	a.editor.Close()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func buildPublisher(cfg config.Config, platformLogger *logging.Logger, logger *slog.Logger) syncevent.Publisher {
	if !cfg.SyncFeedEnabled {
		logger.Info("sync feed disabled", "reason", "SYNC_FEED_ENABLED=false")
		return syncevent.NopPublisher{}
	}

	publisher, err := syncfeed.NewWebhookPublisher(syncfeed.Config{
		URL:     cfg.SyncFeedURL,
		Token:   cfg.SyncFeedToken,
		Timeout: cfg.SyncFeedTimeout,
		Breaker: resilience.BreakerConfig{
			Enabled:          cfg.SyncFeedCircuitEnabled,
			FailureThreshold: cfg.SyncFeedCircuitFailureCount,
			OpenTimeout:      cfg.SyncFeedCircuitOpenTimeout,
		},
	}, platformLogger)
	if err != nil {
		logger.Warn("sync feed misconfigured, events will be dropped", "error", err)
		return syncevent.NopPublisher{}
	}

	logger.Info("sync feed enabled", "url", cfg.SyncFeedURL)
	return publisher
}
