package decision

import "veracity/internal/decision/ports"

// Engine applies fact-check precedence and signal fusion under one policy.
// It is a pure function of its input and holds no mutable state.
type Engine struct {
	policy Policy
}

// Input is everything the engine needs for one verdict.
type Input struct {
	FactCheck          *ports.FactCheckResult
	AIScore            float64
	ClassifierDegraded bool
	Domain             string // empty when no domain was found
	Credibility        float64
}

// NewEngine builds an engine for policy. The zero Policy selects three-way.
func NewEngine(policy Policy) *Engine {
	if policy.IsZero() {
		policy = PolicyThreeWay
	}
	return &Engine{policy: policy}
}

// Policy returns the active thresholding policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Decide produces a verdict. A present fact-check decides alone; otherwise
// the classifier and credibility signals are fused and thresholded.
func (e *Engine) Decide(in Input) Verdict {
	if in.FactCheck != nil {
		return e.decideFromFactCheck(in.FactCheck)
	}
	return e.decideFromSignals(in)
}

func (e *Engine) decideFromFactCheck(fc *ports.FactCheckResult) Verdict {
	v := Verdict{
		Label:      LabelReal,
		Confidence: factCheckRealConfidence,
		Policy:     e.policy,
		Source:     SourceFactCheck,
		FactCheck: &FactCheckEvidence{
			Rating:    fc.Rating,
			Publisher: fc.Publisher,
			ReviewURL: fc.ReviewURL,
		},
	}
	if RatingIndicatesFake(fc.Rating) {
		v.Label = LabelFake
		v.Confidence = factCheckFakeConfidence
	}
	return v
}

func (e *Engine) decideFromSignals(in Input) Verdict {
	ai := NewScore(in.AIScore)
	cred := NewScore(in.Credibility)
	combined := Fuse(ai, cred)

	return Verdict{
		Label:      e.policy.Label(combined, ai),
		Confidence: combined.Rounded(confidencePlaces),
		Policy:     e.policy,
		Source:     SourceFusion,
		Signals: &SignalEvidence{
			AIScore:            ai.Value(),
			ClassifierDegraded: in.ClassifierDegraded,
			Domain:             in.Domain,
			DomainFound:        in.Domain != "",
			Credibility:        cred.Value(),
			Combined:           combined.Value(),
		},
	}
}
