package decision

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"veracity/internal/decision/metrics"
	"veracity/internal/decision/ports"
	dErrors "veracity/pkg/domain-errors"
	"veracity/pkg/requestcontext"
)

// EmptyTextMessage is the user-facing prompt for blank submissions.
const EmptyTextMessage = "Please enter some text."

const tracerName = "veracity/internal/decision"

// Service gathers evidence for a text and asks the engine for a verdict.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	factCheck   ports.FactCheckPort
	classifier  ports.ClassifierPort
	credibility ports.CredibilityPort
	extract     ports.DomainExtractor
	engine      *Engine

	parallel bool
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithParallelLookups runs the fact-check and classifier concurrently. A found
// fact-check still wins and cancels the classifier call.
func WithParallelLookups(enabled bool) Option {
	return func(s *Service) {
		s.parallel = enabled
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New wires the service to its evidence ports.
func New(
	factCheck ports.FactCheckPort,
	classifier ports.ClassifierPort,
	credibility ports.CredibilityPort,
	extract ports.DomainExtractor,
	engine *Engine,
	opts ...Option,
) (*Service, error) {
	if factCheck == nil {
		return nil, errors.New("fact-check port is required")
	}
	if classifier == nil {
		return nil, errors.New("classifier port is required")
	}
	if credibility == nil {
		return nil, errors.New("credibility port is required")
	}
	if extract == nil {
		return nil, errors.New("domain extractor is required")
	}
	if engine == nil {
		return nil, errors.New("engine is required")
	}

	svc := &Service{
		factCheck:   factCheck,
		classifier:  classifier,
		credibility: credibility,
		extract:     extract,
		engine:      engine,
		tracer:      otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Policy exposes the engine's active thresholding policy.
func (s *Service) Policy() Policy {
	return s.engine.Policy()
}

// Evaluate checks one text. Blank text is rejected before any adapter runs;
// adapter failures never fail the evaluation.
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, dErrors.New(dErrors.CodeValidation, EmptyTextMessage)
	}

	ctx, span := s.tracer.Start(ctx, "decision.Evaluate", trace.WithAttributes(
		attribute.String("decision.policy", s.engine.Policy().String()),
		attribute.Bool("decision.parallel_lookups", s.parallel),
		attribute.Int("decision.text_length", len(text)),
	))
	defer span.End()

	start := time.Now()
	evidence, err := s.gatherEvidence(ctx, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "evidence gathering aborted")
		return nil, err
	}

	verdict := s.engine.Decide(evidence.Input())
	duration := time.Since(start)

	s.metrics.IncrementVerdict(string(verdict.Label), string(verdict.Source), verdict.Policy.String())
	s.metrics.ObserveEvaluateLatency(duration)

	span.SetAttributes(
		attribute.String("decision.label", string(verdict.Label)),
		attribute.String("decision.source", string(verdict.Source)),
		attribute.Float64("decision.confidence", verdict.Confidence),
		attribute.String("decision.fact_check_status", string(evidence.FactCheck.Status)),
	)

	s.logVerdict(ctx, verdict, evidence, duration)

	return &EvaluateResult{
		Verdict:         verdict,
		EvaluatedAt:     requestcontext.Now(ctx),
		FactCheckStatus: evidence.FactCheck.Status,
		Latencies:       evidence.Latencies,
	}, nil
}

func (s *Service) logVerdict(ctx context.Context, v Verdict, ev *GatheredEvidence, d time.Duration) {
	if s.logger == nil {
		return
	}
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"label", v.Label,
		"confidence", v.Confidence,
		"source", v.Source,
		"policy", v.Policy.String(),
		"fact_check_status", ev.FactCheck.Status,
		"duration_ms", d.Milliseconds(),
	}
	if v.Signals != nil {
		attrs = append(attrs,
			"domain", v.Signals.Domain,
			"classifier_degraded", v.Signals.ClassifierDegraded,
		)
	}
	s.logger.InfoContext(ctx, "check evaluated", attrs...)
}
