package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veracity/internal/evidence/providers"
)

func TestParseScores(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		scores []float64
		want   float64
	}{
		{"fake first", []string{"fake", "real"}, []float64{0.8, 0.2}, 0.8},
		{"fake second", []string{"real", "fake"}, []float64{0.7, 0.3}, 0.3},
		{"case and space insensitive", []string{"REAL", " Fake "}, []float64{0.1, 0.9}, 0.9},
		{"scores need not sum to one", []string{"fake", "real"}, []float64{0.4, 0.4}, 0.4},
		{"clamped high", []string{"fake"}, []float64{1.7}, 1},
		{"clamped low", []string{"fake"}, []float64{-0.2}, 0},
		{"zip to shorter", []string{"real", "fake"}, []float64{0.6, 0.35, 0.05}, 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScores("test", tt.labels, tt.scores)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseScores_BadData(t *testing.T) {
	cases := map[string]struct {
		labels []string
		scores []float64
	}{
		"no fake label":           {[]string{"real", "satire"}, []float64{0.5, 0.5}},
		"fake label has no score": {[]string{"real", "fake"}, []float64{0.9}},
		"empty":                   {nil, nil},
		"nan score":               {[]string{"fake"}, []float64{math.NaN()}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScores("test", tc.labels, tc.scores)
			assert.Equal(t, providers.ErrorBadData, providers.GetCategory(err))
		})
	}
}

func TestDecodeZeroShot(t *testing.T) {
	t.Run("parallel slices", func(t *testing.T) {
		out, err := decodeZeroShot([]byte(`{"sequence":"x","labels":["real","fake"],"scores":[0.25,0.75]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"real", "fake"}, out.Labels)
	})

	t.Run("label score pairs", func(t *testing.T) {
		out, err := decodeZeroShot([]byte(`[{"label":"fake","score":0.6},{"label":"real","score":0.4}]`))
		require.NoError(t, err)
		assert.Equal(t, []float64{0.6, 0.4}, out.Scores)
	})

	t.Run("wrapped result", func(t *testing.T) {
		out, err := decodeZeroShot([]byte(`[{"labels":["fake","real"],"scores":[0.1,0.9]}]`))
		require.NoError(t, err)
		assert.Equal(t, []float64{0.1, 0.9}, out.Scores)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := decodeZeroShot([]byte(`<html>busy</html>`))
		assert.Equal(t, providers.ErrorBadData, providers.GetCategory(err))
	})
}
