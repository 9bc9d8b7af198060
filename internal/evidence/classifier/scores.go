package classifier

import (
	"math"
	"strings"

	"veracity/internal/evidence/providers"
)

// ParseScores locates the "fake" label among parallel label/score slices and
// returns its score clamped to [0,1]. Labels match case-insensitively after
// trimming; slices of unequal length are zipped to the shorter one. A missing
// label or a NaN score is a bad_data error.
func ParseScores(providerID string, labels []string, scores []float64) (float64, error) {
	n := min(len(labels), len(scores))
	for i := 0; i < n; i++ {
		if !strings.EqualFold(strings.TrimSpace(labels[i]), LabelFake) {
			continue
		}
		score := scores[i]
		if math.IsNaN(score) {
			return 0, providers.NewProviderError(providers.ErrorBadData, providerID, "fake score is NaN", nil)
		}
		return math.Max(0, math.Min(1, score)), nil
	}
	return 0, providers.NewProviderError(providers.ErrorBadData, providerID, "response has no fake label", nil)
}

// labelScore is the per-entry shape some inference endpoints return.
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// zeroShotOutput is the parallel-slice shape of a zero-shot result.
type zeroShotOutput struct {
	Sequence string    `json:"sequence,omitempty"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

func fromPairs(pairs []labelScore) zeroShotOutput {
	out := zeroShotOutput{
		Labels: make([]string, 0, len(pairs)),
		Scores: make([]float64, 0, len(pairs)),
	}
	for _, p := range pairs {
		out.Labels = append(out.Labels, p.Label)
		out.Scores = append(out.Scores, p.Score)
	}
	return out
}
