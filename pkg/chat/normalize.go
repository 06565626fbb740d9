// Package chat implements the rule-based responder core: normalization,
// fuzzy matching, intent classification, entity resolution, aspect
// extraction, and template-driven response synthesis.
package chat

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims a query and collapses any run of three or
// more identical characters down to two, so emphatic typing like "heyyyy"
// matches the same rules as "heyy". Normalization is idempotent.
func Normalize(s string) string {
	return collapseRepeats(strings.TrimSpace(strings.ToLower(s)))
}

// collapseRepeats reduces runs of 3+ identical runes to length 2.
func collapseRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokens extracts maximal alphabetic runs from s, in order.
func Tokens(s string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// TokenSet returns the deduplicated token set of s.
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range Tokens(s) {
		set[t] = struct{}{}
	}
	return set
}

// truncateRunes caps s at n runes. Long queries are cut to a short prefix
// before the expensive fuzzy passes run.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
