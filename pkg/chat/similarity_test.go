package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "brahma", "theme show", "ashwamedha"} {
		assert.Equal(t, 1.0, Similarity(s, s), "Similarity(%q, %q)", s, s)
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"brahma", "bramha"},
		{"venue", "venu"},
		{"thanks", "thanls"},
		{"", "abc"},
		{"hello", "world"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"Similarity(%q, %q) not symmetric", p[0], p[1])
	}
}

func TestSimilarityKnownRatios(t *testing.T) {
	// Matching blocks "ab" + "d": 2*3/(3+4).
	assert.InDelta(t, 6.0/7.0, Similarity("abd", "abcd"), 1e-9)
	// No common characters at all.
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	// Typo tolerance at the thresholds the classifier uses.
	assert.GreaterOrEqual(t, Similarity("thanls", "thanks"), thanksFuzzyThreshold)
	assert.GreaterOrEqual(t, Similarity("bramha", "brahma"), festAliasShortThreshold)
	assert.Less(t, Similarity("infinity", "thanks"), thanksFuzzyThreshold)
	assert.Greater(t, Similarity("themes", "theme"), entityTokenThreshold)
	assert.Less(t, Similarity("shqw", "show"), entityTokenThreshold)
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"}, {"abc", "abc"}, {"longer string here", "short"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}
