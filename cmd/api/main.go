package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	pgRepo "tweetbrief/internal/infra/adapter/persistence/postgres"
	"tweetbrief/internal/infra/db"
	"tweetbrief/internal/infra/fetcher"
	"tweetbrief/internal/infra/notifier"
	"tweetbrief/internal/infra/summarizer"
	"tweetbrief/internal/observability/logging"
	"tweetbrief/pkg/config"

	feedUC "tweetbrief/internal/usecase/feed"
	ingUC "tweetbrief/internal/usecase/ingest"

	hhttp "tweetbrief/internal/handler/http"
	hauth "tweetbrief/internal/handler/http/auth"
	hfeed "tweetbrief/internal/handler/http/feed"
	hingest "tweetbrief/internal/handler/http/ingest"
	"tweetbrief/internal/handler/http/requestid"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	secret := requireIngestSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ingestSvc := ingUC.Service{
		Repo:       pgRepo.NewSummaryRepo(database),
		Summarizer: initSummarizer(logger),
		Fetcher:    fetcher.New(fetcher.LoadConfig()),
		Notifier:   initNotifier(logger),
	}
	feedSvc := feedUC.Service{Repo: pgRepo.NewSummaryRepo(database)}

	handler := applyMiddleware(logger, setupRoutes(database, secret, ingestSvc, feedSvc))

	runServer(logger, handler)
}

// requireIngestSecret validates the shared ingest secret at startup.
// The server refuses to start without one so the ingest endpoint is never
// accidentally exposed unauthenticated.
func requireIngestSecret(logger *slog.Logger) string {
	secret := os.Getenv("INGEST_SECRET")
	if secret == "" {
		logger.Error("INGEST_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 16 {
		logger.Error("INGEST_SECRET must be at least 16 characters")
		os.Exit(1)
	}
	return secret
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initSummarizer selects the summarization provider from the environment.
// SUMMARIZER_PROVIDER picks claude (default), openai, or noop. Missing API
// keys fall back to the noop summarizer so local development works keyless.
func initSummarizer(logger *slog.Logger) ingUC.Summarizer {
	provider := config.GetEnvString("SUMMARIZER_PROVIDER", "claude")

	switch provider {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			logger.Info("summarizer: openai")
			return summarizer.NewOpenAI(key)
		}
		logger.Warn("OPENAI_API_KEY not set, falling back to noop summarizer")
	case "claude":
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			logger.Info("summarizer: claude")
			return summarizer.NewClaude(key)
		}
		logger.Warn("ANTHROPIC_API_KEY not set, falling back to noop summarizer")
	case "noop":
	default:
		logger.Warn("unknown summarizer provider, falling back to noop",
			slog.String("provider", provider))
	}

	logger.Info("summarizer: noop")
	return summarizer.NewNoOp()
}

// initNotifier builds the FCM notifier, degrading to noop when credentials
// are absent or invalid. Notification delivery is best-effort throughout, so
// a broken notifier configuration must not prevent startup.
func initNotifier(logger *slog.Logger) ingUC.Notifier {
	cfg := notifier.LoadFCMConfig()
	if cfg.CredentialsJSON == "" {
		logger.Warn("FCM_CREDENTIALS_JSON not set, notifications disabled")
		return notifier.NewNoOp()
	}

	fcm, err := notifier.NewFCM(context.Background(), cfg)
	if err != nil {
		logger.Warn("FCM initialization failed, notifications disabled",
			slog.Any("error", err))
		return notifier.NewNoOp()
	}

	logger.Info("notifier: fcm", slog.String("topic", cfg.Topic))
	return fcm
}

// setupRoutes registers all HTTP routes. Only /ingest requires the shared
// secret; the feed and the operational endpoints are public.
func setupRoutes(database *sql.DB, secret string, ingestSvc ingUC.Service, feedSvc feedUC.Service) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", &hhttp.LiveHandler{})
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version()})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/feed", hfeed.Handler{Svc: feedSvc})
	mux.Handle("/ingest", hauth.RequireSecret(secret)(hingest.Handler{Svc: ingestSvc}))
	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): request ID, recovery, logging, body limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	return chain
}

func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler) {
	addr := ":" + config.GetEnvString("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
