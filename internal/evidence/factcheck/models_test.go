package factcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectResult(t *testing.T) {
	t.Run("no claims", func(t *testing.T) {
		_, ok := SelectResult(nil)
		assert.False(t, ok)
	})

	t.Run("first reviewed claim wins", func(t *testing.T) {
		claims := []Claim{
			{Text: "unreviewed claim"},
			{Text: "second", ClaimReview: []Review{
				{TextualRating: "Pants on Fire", Publisher: Publisher{Name: "PolitiFact"}, URL: "https://politifact.com/x"},
				{TextualRating: "True", Publisher: Publisher{Name: "Other"}},
			}},
			{Text: "third", ClaimReview: []Review{{TextualRating: "Mostly true"}}},
		}

		got, ok := SelectResult(claims)
		assert.True(t, ok)
		assert.Equal(t, Result{Rating: "Pants on Fire", Publisher: "PolitiFact", ReviewURL: "https://politifact.com/x"}, got)
	})

	t.Run("falls back to first claim text", func(t *testing.T) {
		claims := []Claim{{Text: "Vaccines contain microchips"}, {Text: "other"}}

		got, ok := SelectResult(claims)
		assert.True(t, ok)
		assert.Equal(t, Result{Rating: "Vaccines contain microchips"}, got)
	})
}
