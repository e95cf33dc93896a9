package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kelompok10/surveydash/internal/api"
	"github.com/kelompok10/surveydash/internal/config"
	"github.com/kelompok10/surveydash/internal/middleware"
	"github.com/kelompok10/surveydash/internal/services"
	"github.com/kelompok10/surveydash/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := newLogger(cfg.Server)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	svc := services.NewAnalysisService(services.AnalysisConfig{
		Alpha:         cfg.Analysis.Alpha,
		MinIndexItems: cfg.Analysis.MinIndexItems,
		HistogramBins: cfg.Analysis.HistogramBins,
	}, logger.Named("analysis"))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger.Named("http")))
	api.NewRouter(svc, logger, cfg.Server.MaxUploadBytes(), api.Build{
		Commit:    cfg.Server.Commit,
		BuildTime: cfg.Server.BuildTime,
	}).Register(r)

	// Static front-end, if bundled.
	if dir := cfg.Server.StaticDir; dir != "" {
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	}

	noStore := middleware.NoStore("/api/", "/health", "/version")
	handler := noStore(middleware.SecureHeaders(middleware.CORS(middleware.Locale(middleware.DefaultLocale, utils.SupportedLocales...)(r))))
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		logger.Info("surveydash listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("env", cfg.Server.Env),
			zap.String("commit", cfg.Server.Commit),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(c config.ServerConfig) (*zap.Logger, error) {
	if c.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
