package decision

import (
	"strings"

	strutil "veracity/pkg/platform/strings"
)

const (
	aiWeight          = 0.6
	credibilityWeight = 0.4

	// Confidences reported for fact-check verdicts.
	factCheckFakeConfidence = 0.99
	factCheckRealConfidence = 0.01

	confidencePlaces = 3
)

// fakeRatingMarkers flag a fact-check rating as debunking the claim.
// Matching is by substring, so "It is not true that this is false" still
// counts as fake.
var fakeRatingMarkers = normalizeAll([]string{
	"false",
	"fake",
	"misleading",
	"altered",
	"pants-on-fire",
	"not true",
})

// RatingIndicatesFake reports whether a fact-check rating debunks the claim.
// Case, hyphens and runs of whitespace are ignored, so "Pants on Fire!"
// matches "pants-on-fire".
func RatingIndicatesFake(rating string) bool {
	normalized := normalizeRating(rating)
	for _, marker := range fakeRatingMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

// Fuse combines the classifier's fake probability with the inverted source
// credibility. The classifier carries more weight than the static prior.
func Fuse(ai, credibility Score) Score {
	return NewScore(aiWeight*ai.Value() + credibilityWeight*credibility.Inverted().Value())
}

func normalizeRating(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	return strutil.CollapseWhitespace(s)
}

func normalizeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = normalizeRating(v)
	}
	return out
}
