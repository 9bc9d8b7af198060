package handler

import (
	"time"

	"veracity/internal/decision"
)

// CheckResponse is the HTTP response for POST /check.
type CheckResponse struct {
	Label       string           `json:"label"`
	Confidence  float64          `json:"confidence"`
	Policy      string           `json:"policy"`
	Source      string           `json:"source"`
	Evidence    EvidenceResponse `json:"evidence"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}

// EvidenceResponse carries exactly one of the two evidence shapes.
type EvidenceResponse struct {
	FactCheck *FactCheckEvidenceResponse `json:"fact_check,omitempty"`
	Signals   *SignalEvidenceResponse    `json:"signals,omitempty"`
}

type FactCheckEvidenceResponse struct {
	Rating    string `json:"rating"`
	Publisher string `json:"publisher"`
	ReviewURL string `json:"review_url"`
}

type SignalEvidenceResponse struct {
	AIScore            float64 `json:"ai_score"`
	ClassifierDegraded bool    `json:"classifier_degraded"`
	Domain             *string `json:"domain"` // null when no domain was found
	Credibility        float64 `json:"credibility"`
	Combined           float64 `json:"combined"`
}

// PolicyResponse is the HTTP response for GET /check/policy.
type PolicyResponse struct {
	Policy        string  `json:"policy"`
	FakeThreshold float64 `json:"fake_threshold"`
	RealThreshold float64 `json:"real_threshold"`
	TieBreak      bool    `json:"tie_break"`
}

// FromResult converts a domain EvaluateResult to an HTTP response.
func FromResult(result *decision.EvaluateResult) *CheckResponse {
	v := result.Verdict
	resp := &CheckResponse{
		Label:       string(v.Label),
		Confidence:  v.Confidence,
		Policy:      v.Policy.String(),
		Source:      string(v.Source),
		EvaluatedAt: result.EvaluatedAt,
	}

	switch {
	case v.FactCheck != nil:
		resp.Evidence.FactCheck = &FactCheckEvidenceResponse{
			Rating:    v.FactCheck.Rating,
			Publisher: v.FactCheck.Publisher,
			ReviewURL: v.FactCheck.ReviewURL,
		}
	case v.Signals != nil:
		signals := &SignalEvidenceResponse{
			AIScore:            round3(v.Signals.AIScore),
			ClassifierDegraded: v.Signals.ClassifierDegraded,
			Credibility:        round3(v.Signals.Credibility),
			Combined:           v.Confidence,
		}
		if v.Signals.DomainFound {
			domain := v.Signals.Domain
			signals.Domain = &domain
		}
		resp.Evidence.Signals = signals
	}
	return resp
}

// FromPolicy converts the active policy to an HTTP response.
func FromPolicy(p decision.Policy) *PolicyResponse {
	return &PolicyResponse{
		Policy:        p.String(),
		FakeThreshold: p.FakeThreshold(),
		RealThreshold: p.RealThreshold(),
		TieBreak:      p.TieBreaks(),
	}
}

func round3(v float64) float64 {
	return decision.NewScore(v).Rounded(3)
}
