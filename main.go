package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql (migrations)
	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/cache"
	"github.com/asiet-labs/festbot/pkg/catalog"
	"github.com/asiet-labs/festbot/pkg/chat"
	"github.com/asiet-labs/festbot/pkg/config"
	"github.com/asiet-labs/festbot/pkg/database"
	"github.com/asiet-labs/festbot/pkg/handlers"
	"github.com/asiet-labs/festbot/pkg/llm"
	"github.com/asiet-labs/festbot/pkg/logging"
	"github.com/asiet-labs/festbot/pkg/metrics"
	"github.com/asiet-labs/festbot/pkg/middleware"
	"github.com/asiet-labs/festbot/pkg/repositories"
	"github.com/asiet-labs/festbot/pkg/retrieval"
	"github.com/asiet-labs/festbot/pkg/services"
	"github.com/asiet-labs/festbot/pkg/stats"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("bind_addr", cfg.BindAddr),
		zap.String("port", cfg.Port),
		zap.Bool("database", cfg.Database.IsConfigured()),
		zap.Bool("redis", cfg.Redis.Host != ""),
		zap.Bool("ai", cfg.AI.IsAvailable()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tables, err := chat.LoadTables(cfg.Data.TablesPath)
	if err != nil {
		logger.Fatal("Failed to load keyword tables", zap.Error(err))
	}

	store := catalog.NewStore()

	// Catalog source: Postgres when configured, otherwise the events file.
	var source services.EventSource = services.FileSource{Path: cfg.Data.EventsPath}
	if cfg.Database.IsConfigured() {
		sqlDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
		if err != nil {
			logger.Fatal("Failed to open database for migrations", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, cfg.Data.MigrationsPath, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		_ = sqlDB.Close()

		db, err := database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.ConnectionString(),
			MaxConnections: cfg.Database.MaxConnections,
		})
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		source = repositories.NewEventRepository(db)
	}

	sections, err := retrieval.LoadFestivalSections(cfg.Data.FestivalInfoPath)
	if err != nil {
		logger.Warn("Festival info not loaded", zap.Error(err))
	}

	// The retrieval+generation fallback is optional: without an AI endpoint
	// the responder runs on keyword matching alone.
	var generator *llm.Answerer
	var index *retrieval.Index
	if cfg.AI.IsAvailable() {
		client, err := llm.NewFromConfig(&cfg.AI, logger)
		if err != nil {
			logger.Fatal("Failed to create LLM client", zap.Error(err))
		}
		generator = llm.NewAnswerer(client, logger)

		embedder, err := llm.NewEmbeddingClientFromConfig(&cfg.AI, logger)
		if err != nil {
			logger.Warn("Embedding client unavailable, retrieval disabled", zap.Error(err))
		} else {
			index = retrieval.NewIndex(embedder, logger)
		}
	}

	var indexer services.Indexer
	if index != nil {
		indexer = index
	}
	syncer := services.NewSyncService(source, store, indexer, sections, logger)
	if _, err := syncer.Sync(ctx); err != nil {
		// Startup with a degraded or empty catalog is still serviceable;
		// POST /sync can recover once the source is reachable.
		logger.Warn("Initial catalog sync incomplete", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, answer cache disabled", zap.Error(err))
	}
	answerTTL := time.Duration(cfg.Redis.AnswerTTLMinutes) * time.Minute
	replyCache := cache.NewReplyCache(redisClient, answerTTL, logger)

	tracker := stats.NewTracker()
	m := metrics.New()

	engineOpts := []chat.EngineOption{
		chat.WithObserver(chat.MultiObserver{tracker, m}),
		chat.WithReplyCache(replyCache),
	}
	if index != nil {
		engineOpts = append(engineOpts, chat.WithSearcher(index))
	}
	if generator != nil {
		engineOpts = append(engineOpts, chat.WithGenerator(generator))
	}
	engine := chat.NewEngine(tables, store, logger, engineOpts...)

	mux := http.NewServeMux()

	chatHandler := handlers.NewChatHandler(engine, tracker, m, logger)
	chatHandler.RegisterRoutes(mux)

	healthHandler := handlers.NewHealthHandler(cfg, store, logger)
	healthHandler.RegisterRoutes(mux)

	var lenner handlers.Lenner
	if index != nil {
		lenner = index
	}
	statsHandler := handlers.NewStatsHandler(cfg, tracker, store, lenner, syncer, logger)
	statsHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", m.Handler())

	handler := middleware.CORS(middleware.RequestLogger(logger)(mux))

	server := &http.Server{
		Addr:              cfg.BindAddr + ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting festbot",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
