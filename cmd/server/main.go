package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"veracity/internal/decision"
	"veracity/internal/decision/adapters"
	"veracity/internal/decision/handler"
	decisionmetrics "veracity/internal/decision/metrics"
	"veracity/internal/evidence/classifier"
	"veracity/internal/evidence/factcheck"
	"veracity/internal/evidence/providers"
	"veracity/internal/evidence/source"
	httpapi "veracity/internal/http"
	"veracity/internal/platform/config"
	"veracity/internal/platform/httpserver"
	"veracity/internal/platform/logger"
	"veracity/internal/platform/metrics"
	redisclient "veracity/internal/platform/redis"
	"veracity/pkg/platform/circuit"
)

const shutdownTimeout = 10 * time.Second

// main wires dependencies, exposes the HTTP router and owns the server
// lifecycle. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, rdb, err := buildService(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build decision service", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}()

	routerCfg := httpapi.Config{
		Logger:   log,
		Metrics:  metrics.New(),
		Gatherer: prometheus.DefaultGatherer,
	}
	if rdb != nil {
		routerCfg.Health = rdb
	}
	router := httpapi.NewRouter(routerCfg, handler.New(svc, log))
	srv := httpserver.New(cfg, router)

	log.Info("starting veracity",
		"addr", cfg.Addr,
		"policy", svc.Policy().String(),
		"fact_check_enabled", cfg.FactCheckEnabled(),
		"classifier_provider", cfg.Classifier.Provider,
		"parallel_lookups", cfg.Decision.ParallelLookups,
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// buildService assembles the evidence adapters and the decision service.
// Missing or broken optional dependencies degrade instead of failing startup.
func buildService(ctx context.Context, cfg config.Server, log *slog.Logger) (*decision.Service, *redisclient.Client, error) {
	policy, err := decision.ParsePolicy(cfg.Decision.ThresholdPolicy)
	if err != nil {
		return nil, nil, err
	}

	retry := providers.RetryPolicy{
		MaxAttempts:     cfg.Retry.MaxAttempts,
		InitialInterval: cfg.Retry.InitialInterval,
	}
	decisionMetrics := decisionmetrics.New()

	table, err := source.LoadTable(cfg.Reputation.Path)
	if err != nil {
		log.Warn("reputation table unavailable, every domain scores neutral",
			"path", cfg.Reputation.Path,
			"error", err,
		)
	}
	log.Info("reputation table loaded", "entries", table.Len())

	provider, err := classifier.NewProvider(ctx, classifier.Config{
		Provider:           cfg.Classifier.Provider,
		URL:                cfg.Classifier.URL,
		Token:              cfg.Classifier.Token,
		Timeout:            cfg.Classifier.Timeout,
		HypothesisTemplate: cfg.Classifier.HypothesisTemplate,
		Retry:              retry,
		LLMBaseURL:         cfg.Classifier.LLM.BaseURL,
		LLMAPIKey:          cfg.Classifier.LLM.APIKey,
		LLMModel:           cfg.Classifier.LLM.Model,
	})
	if err != nil {
		log.Warn("classifier unavailable, scores fall back to neutral",
			"provider", cfg.Classifier.Provider,
			"error", err,
		)
		provider = classifier.Unavailable{}
	}

	rdb, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, fact-check cache disabled", "error", err)
		rdb = nil
	}
	var cache factcheck.Cache
	if rdb != nil {
		cache = factcheck.NewRedisCache(rdb.Client, cfg.FactCheck.CacheTTL)
	}

	factCheckClient := factcheck.New(factcheck.Config{
		URL:     cfg.FactCheck.URL,
		APIKey:  cfg.FactCheck.APIKey,
		Timeout: cfg.FactCheck.Timeout,
		RPS:     cfg.FactCheck.RPS,
		Retry:   retry,
	})
	if !factCheckClient.Configured() {
		log.Warn("GOOGLE_FACTCHECK_API_KEY not set, fact-check lookups are skipped")
	}

	factCheck := adapters.NewFactCheckAdapter(factCheckClient, cache, cfg.FactCheck.Timeout,
		adapters.WithLogger(log),
		adapters.WithMetrics(decisionMetrics),
		adapters.WithBreaker(newBreaker(factcheck.ProviderID, cfg.Circuit)),
	)
	classify := adapters.NewClassifierAdapter(provider, cfg.Classifier.Timeout, cfg.Classifier.MaxInputChars,
		adapters.WithLogger(log),
		adapters.WithMetrics(decisionMetrics),
		adapters.WithBreaker(newBreaker(provider.ID(), cfg.Circuit)),
	)

	svc, err := decision.New(
		factCheck,
		classify,
		adapters.NewCredibilityAdapter(source.NewLookup(table)),
		adapters.NewDomainExtractor(),
		decision.NewEngine(policy),
		decision.WithLogger(log),
		decision.WithMetrics(decisionMetrics),
		decision.WithParallelLookups(cfg.Decision.ParallelLookups),
	)
	if err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}
	return svc, rdb, nil
}

func newBreaker(name string, cfg config.CircuitConfig) *circuit.Breaker {
	return circuit.New(name,
		circuit.WithFailureThreshold(cfg.FailureThreshold),
		circuit.WithSuccessThreshold(cfg.SuccessThreshold),
		circuit.WithCooldown(cfg.Cooldown),
	)
}
