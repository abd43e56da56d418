package engine

// levenshtein computes rune-level edit distance with a two-row matrix.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// changeRatio normalizes edit distance by the original length.
func changeRatio(original, edited string) float64 {
	runes := []rune(original)
	if len(runes) == 0 {
		if edited == "" {
			return 0
		}
		return 1
	}
	ratio := float64(levenshtein(original, edited)) / float64(len(runes))
	if ratio > 1 {
		return 1
	}
	return ratio
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
