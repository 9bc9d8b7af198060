package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr       string
	FactCheck  FactCheckConfig
	Classifier ClassifierConfig
	Reputation ReputationConfig
	Decision   DecisionConfig
	Redis      RedisConfig
	Retry      RetryConfig
	Circuit    CircuitConfig
	Log        LogConfig
}

// FactCheckConfig configures the external fact-check lookup.
type FactCheckConfig struct {
	APIKey   string
	URL      string
	Timeout  time.Duration
	RPS      float64
	CacheTTL time.Duration
}

// ClassifierConfig configures the text-classification backend.
type ClassifierConfig struct {
	Provider           string
	URL                string
	Token              string
	Timeout            time.Duration
	HypothesisTemplate string
	MaxInputChars      int
	LLM                LLMConfig
}

// LLMConfig configures the OpenAI-compatible chat model used by the llm provider.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// ReputationConfig points at the static domain credibility table.
type ReputationConfig struct {
	Path string
}

// DecisionConfig selects fusion behaviour.
type DecisionConfig struct {
	ThresholdPolicy string
	ParallelLookups bool
}

// RedisConfig configures the optional fact-check cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RetryConfig bounds retries of transient upstream failures.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
}

// CircuitConfig tunes the per-upstream circuit breakers.
type CircuitConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Cooldown         time.Duration
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string
	Format string
}

const (
	DefaultFactCheckURL       = "https://factchecktools.googleapis.com/v1alpha1/claims:search"
	DefaultClassifierURL      = "https://api-inference.huggingface.co/models/facebook/bart-large-mnli"
	DefaultHypothesisTemplate = "This example is {}."
)

var (
	validPolicies  = []string{"three_way", "tie_broken"}
	validProviders = []string{"huggingface", "llm", "none"}
)

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed numeric or duration values fall back to their defaults.
func FromEnv() Server {
	return Server{
		Addr: envString("VERACITY_ADDR", ":8080"),
		FactCheck: FactCheckConfig{
			APIKey:   os.Getenv("GOOGLE_FACTCHECK_API_KEY"),
			URL:      envString("FACTCHECK_URL", DefaultFactCheckURL),
			Timeout:  envDuration("FACTCHECK_TIMEOUT", 10*time.Second),
			RPS:      envFloat("FACTCHECK_RPS", 0),
			CacheTTL: envDuration("FACTCHECK_CACHE_TTL", time.Hour),
		},
		Classifier: ClassifierConfig{
			Provider:           strings.ToLower(envString("CLASSIFIER_PROVIDER", "huggingface")),
			URL:                envString("CLASSIFIER_URL", DefaultClassifierURL),
			Token:              os.Getenv("CLASSIFIER_TOKEN"),
			Timeout:            envDuration("CLASSIFIER_TIMEOUT", 20*time.Second),
			HypothesisTemplate: envString("CLASSIFIER_HYPOTHESIS", DefaultHypothesisTemplate),
			MaxInputChars:      envInt("CLASSIFIER_MAX_INPUT_CHARS", 4000),
			LLM: LLMConfig{
				BaseURL: os.Getenv("LLM_BASE_URL"),
				APIKey:  os.Getenv("LLM_API_KEY"),
				Model:   os.Getenv("LLM_MODEL"),
			},
		},
		Reputation: ReputationConfig{
			Path: envString("SOURCE_CRED_PATH", "source_cred.json"),
		},
		Decision: DecisionConfig{
			ThresholdPolicy: strings.ToLower(envString("THRESHOLD_POLICY", "three_way")),
			ParallelLookups: envBool("CHECK_PARALLEL_LOOKUPS", false),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Retry: RetryConfig{
			MaxAttempts:     envInt("RETRY_MAX_ATTEMPTS", 2),
			InitialInterval: envDuration("RETRY_INITIAL_INTERVAL", 200*time.Millisecond),
		},
		Circuit: CircuitConfig{
			FailureThreshold: envInt("CIRCUIT_FAILURE_THRESHOLD", 5),
			SuccessThreshold: envInt("CIRCUIT_SUCCESS_THRESHOLD", 1),
			Cooldown:         envDuration("CIRCUIT_COOLDOWN", 30*time.Second),
		},
		Log: LogConfig{
			Level:  envString("LOG_LEVEL", "info"),
			Format: envString("LOG_FORMAT", "json"),
		},
	}
}

// Validate rejects settings that would otherwise be silently guessed at.
func (s Server) Validate() error {
	if !contains(validPolicies, s.Decision.ThresholdPolicy) {
		return fmt.Errorf("THRESHOLD_POLICY must be one of %v, got %q", validPolicies, s.Decision.ThresholdPolicy)
	}
	if !contains(validProviders, s.Classifier.Provider) {
		return fmt.Errorf("CLASSIFIER_PROVIDER must be one of %v, got %q", validProviders, s.Classifier.Provider)
	}
	if s.Classifier.Provider == "llm" && (s.Classifier.LLM.BaseURL == "" || s.Classifier.LLM.Model == "") {
		return fmt.Errorf("CLASSIFIER_PROVIDER=llm requires LLM_BASE_URL and LLM_MODEL")
	}
	if !strings.Contains(s.Classifier.HypothesisTemplate, "{}") {
		return fmt.Errorf("CLASSIFIER_HYPOTHESIS must contain a {} placeholder")
	}
	if s.FactCheck.Timeout <= 0 || s.Classifier.Timeout <= 0 {
		return fmt.Errorf("upstream timeouts must be positive")
	}
	return nil
}

// FactCheckEnabled reports whether a fact-check credential is configured.
func (s Server) FactCheckEnabled() bool {
	return s.FactCheck.APIKey != ""
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func envFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
