package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "breaking news today", CollapseWhitespace("  breaking\n\tnews   today \r\n"))
	assert.Equal(t, "", CollapseWhitespace(" \t\n"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "hello", TruncateRunes("hello", 0), "zero disables truncation")
	assert.Equal(t, "hello", TruncateRunes("hello", 10))
	assert.Equal(t, "hel", TruncateRunes("hello", 3))
	assert.Equal(t, "héll", TruncateRunes("héllo wörld", 4), "multi-byte runes stay whole")
	assert.Equal(t, "日本", TruncateRunes("日本語", 2))
}
