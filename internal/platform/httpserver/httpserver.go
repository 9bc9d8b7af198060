package httpserver

import (
	"net/http"
	"time"

	"veracity/internal/platform/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	idleTimeout       = 60 * time.Second
	// writeSlack covers fusion, encoding and the cache round trips on top of
	// the upstream budgets.
	writeSlack = 5 * time.Second
)

// New builds the HTTP server. The write timeout is sized so a sequential
// check, fact-check then classifier at their full timeouts, still completes.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      WriteTimeout(cfg),
		IdleTimeout:       idleTimeout,
	}
}

// WriteTimeout returns the response deadline derived from the upstream timeouts.
func WriteTimeout(cfg config.Server) time.Duration {
	return cfg.FactCheck.Timeout + cfg.Classifier.Timeout + writeSlack
}
