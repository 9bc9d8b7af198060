package decision

import (
	"time"

	"veracity/internal/decision/ports"
)

// Label is the verdict category shown to the caller.
type Label string

const (
	LabelReal       Label = "REAL"
	LabelFake       Label = "FAKE"
	LabelUncertain  Label = "UNCERTAIN"
	LabelFakeLikely Label = "FAKE_LIKELY"
	LabelRealLikely Label = "REAL_LIKELY"
)

// Source records which rule produced a verdict.
type Source string

const (
	// SourceFactCheck marks a verdict decided by a published fact-check.
	SourceFactCheck Source = "fact_check"
	// SourceFusion marks a verdict computed from classifier and credibility signals.
	SourceFusion Source = "fusion"
)

// Verdict is the immutable outcome of one check. Exactly one of FactCheck and
// Signals is set, matching Source.
type Verdict struct {
	Label      Label
	Confidence float64 // fake-likelihood in [0,1]
	Policy     Policy
	Source     Source
	FactCheck  *FactCheckEvidence
	Signals    *SignalEvidence
}

// FactCheckEvidence is the published review that decided a verdict.
type FactCheckEvidence struct {
	Rating    string
	Publisher string
	ReviewURL string
}

// SignalEvidence is the numeric evidence behind a fused verdict.
type SignalEvidence struct {
	AIScore            float64
	ClassifierDegraded bool
	Domain             string
	DomainFound        bool
	Credibility        float64
	Combined           float64 // unrounded; Verdict.Confidence is the reported value
}

// EvaluateRequest is the domain input of a check.
type EvaluateRequest struct {
	Text string
}

// EvaluateResult wraps a verdict with request-scoped diagnostics. Nothing in
// it is persisted.
type EvaluateResult struct {
	Verdict         Verdict
	EvaluatedAt     time.Time
	FactCheckStatus ports.LookupStatus
	Latencies       EvidenceLatencies
}

// EvidenceLatencies holds per-source gathering durations. Sources that were
// not consulted stay zero.
type EvidenceLatencies struct {
	FactCheck   time.Duration
	Classifier  time.Duration
	Credibility time.Duration
}

// GatheredEvidence collects adapter outcomes for one evaluation.
type GatheredEvidence struct {
	FactCheck      ports.FactCheckLookup
	Classification ports.Classification
	Domain         string
	DomainFound    bool
	Credibility    float64
	Latencies      EvidenceLatencies
	FetchedAt      time.Time
}

// Input converts gathered evidence into engine input. A found fact-check
// suppresses the numeric signals entirely.
func (e *GatheredEvidence) Input() Input {
	if e.FactCheck.Found() {
		return Input{FactCheck: e.FactCheck.Result}
	}
	return Input{
		AIScore:            e.Classification.FakeProbability,
		ClassifierDegraded: e.Classification.Degraded,
		Domain:             e.Domain,
		Credibility:        e.Credibility,
	}
}
