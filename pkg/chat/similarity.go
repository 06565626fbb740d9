package chat

// Similarity scores how alike two strings are on a [0,1] scale. It is the
// classic sequence-matcher ratio: twice the total length of matching
// contiguous blocks divided by the combined length of both strings. It is
// symmetric and Similarity(a, a) == 1.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchedLen(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

// matchedLen sums the lengths of all matching blocks between a[alo:ahi] and
// b[blo:bhi]: find the longest match, then recurse on the pieces to its left
// and right.
func matchedLen(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, k := longestMatch(a, b, alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k +
		matchedLen(a, b, alo, i, blo, j) +
		matchedLen(a, b, i+k, ahi, j+k, bhi)
}

// longestMatch finds the longest matching block between a[alo:ahi] and
// b[blo:bhi]. Of all maximal blocks it returns the one starting earliest in
// a, and of those the one starting earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestk
}
