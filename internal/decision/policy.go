package decision

import (
	"strings"

	dErrors "veracity/pkg/domain-errors"
)

// Policy turns a combined fake-likelihood into a label. It is chosen once at
// startup and never varies per request.
type Policy struct {
	name     string
	fakeAt   float64
	realAt   float64
	tieBreak bool
}

var (
	// PolicyThreeWay labels FAKE at ≥0.60, REAL at ≤0.40 and UNCERTAIN between.
	PolicyThreeWay = Policy{name: "three_way", fakeAt: 0.60, realAt: 0.40}

	// PolicyTieBroken labels FAKE at ≥0.55, REAL at ≤0.45 and otherwise leans
	// on the classifier alone, so it never answers UNCERTAIN.
	PolicyTieBroken = Policy{name: "tie_broken", fakeAt: 0.55, realAt: 0.45, tieBreak: true}
)

// ParsePolicy resolves a configured policy name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyThreeWay.name:
		return PolicyThreeWay, nil
	case PolicyTieBroken.name:
		return PolicyTieBroken, nil
	default:
		return Policy{}, dErrors.New(dErrors.CodeValidation, "unknown threshold policy: "+name)
	}
}

// String returns the configuration name of the policy.
func (p Policy) String() string { return p.name }

// FakeThreshold is the lowest combined score labelled FAKE.
func (p Policy) FakeThreshold() float64 { return p.fakeAt }

// RealThreshold is the highest combined score labelled REAL.
func (p Policy) RealThreshold() float64 { return p.realAt }

// TieBreaks reports whether the band between thresholds is resolved by the
// classifier score instead of UNCERTAIN.
func (p Policy) TieBreaks() bool { return p.tieBreak }

// IsZero reports whether p is the unset Policy.
func (p Policy) IsZero() bool { return p.name == "" }

// Label classifies combined, consulting ai only inside the tie band.
func (p Policy) Label(combined, ai Score) Label {
	switch {
	case combined.Value() >= p.fakeAt:
		return LabelFake
	case combined.Value() <= p.realAt:
		return LabelReal
	case !p.tieBreak:
		return LabelUncertain
	case ai.Value() > 0.5:
		return LabelFakeLikely
	default:
		return LabelRealLikely
	}
}
