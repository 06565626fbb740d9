package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello  ", "hello"},
		{"heyyyy", "heyy"},
		{"HEYYYY THERE", "heyy there"},
		{"okkkkay", "okkay"},
		{"", ""},
		{"soooo    coool", "soo    cool"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Heyyyy", "what is brahma???", "  WHERE is Theme Show  ",
		"aaaaaabbbbbb", "", "ok ok", "thanks a lot!!!", "héllooo",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"where", "is", "theme", "show"}, Tokens("where is theme show?"))
	assert.Equal(t, []string{"what", "s", "up"}, Tokens("what's up"))
	assert.Empty(t, Tokens("123 456 !!"))
}

func TestTokenSetDeduplicates(t *testing.T) {
	set := TokenSet("ok ok ok")
	assert.Len(t, set, 1)
	_, ok := set["ok"]
	assert.True(t, ok)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abcdef", 3))
	assert.Equal(t, "abcdef", truncateRunes("abcdef", 100))
	assert.Equal(t, "", truncateRunes("abc", 0))
	// Multi-byte runes are not split.
	assert.Equal(t, "hél", truncateRunes("héllo", 3))
}
