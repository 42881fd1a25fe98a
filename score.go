package boggle

// Score returns the points a word is worth under the usual Boggle rules.
// Words shorter than MinWordLength are worth nothing.
func Score(word string) int {
	switch n := len(word); {
	case n < MinWordLength:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	}
	return 11
}

// TotalScore adds up the score of every word.
func TotalScore(words []string) int {
	total := 0
	for _, word := range words {
		total += Score(word)
	}
	return total
}
