package lints

// jaroSimilarity computes the Jaro similarity of two strings, byte-wise.
// Symbol names here are plain ASCII, so bytes and characters coincide.
func jaroSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	window := len(a)
	if len(b) > window {
		window = len(b)
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(a))
	bMatched := make([]bool, len(b))
	matches := 0
	for i := 0; i < len(a); i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > len(b) {
			hi = len(b)
		}
		for j := lo; j < hi; j++ {
			if bMatched[j] || a[i] != b[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	j := 0
	for i := 0; i < len(a); i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if a[i] != b[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}

// jaroWinkler boosts the Jaro similarity for strings sharing a common
// prefix, up to four bytes.
func jaroWinkler(a, b string) float64 {
	sim := jaroSimilarity(a, b)
	if sim <= 0.7 {
		return sim
	}
	prefix := 0
	for prefix < len(a) && prefix < len(b) && prefix < 4 && a[prefix] == b[prefix] {
		prefix++
	}
	return sim + float64(prefix)*0.1*(1-sim)
}

// meant finds the closest candidate to a misspelled name. Anything below a
// 0.8 similarity is not close enough to suggest.
func meant(actual string, candidates []string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, candidate := range candidates {
		if score := jaroWinkler(actual, candidate); score >= 0.8 && score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best, best != ""
}
