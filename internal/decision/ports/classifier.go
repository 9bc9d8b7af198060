package ports

import "context"

// NeutralFakeProbability is the maximum-uncertainty score used whenever the
// classifier cannot answer.
const NeutralFakeProbability = 0.5

// ClassifierPort scores how likely a text is fake news.
// Implementations never return an error; failures degrade to the neutral score.
type ClassifierPort interface {
	Classify(ctx context.Context, text string) Classification
}

// Classification is the explicit classifier outcome. Degraded is true exactly
// when FakeProbability is the neutral fallback, with Err carrying the cause.
type Classification struct {
	FakeProbability float64
	Degraded        bool
	Err             error
}

// Fallback builds the degraded classification for cause.
func Fallback(cause error) Classification {
	return Classification{
		FakeProbability: NeutralFakeProbability,
		Degraded:        true,
		Err:             cause,
	}
}
