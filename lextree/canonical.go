package lextree

// Characters accepted in canonical text besides a-z.
const (
	Hyphen     = '-'
	Apostrophe = '\''
)

// alphabetSize is the number of distinct characters a node can branch on.
const alphabetSize = 2 + 26

// symbol returns the child slot for c. Slots follow byte order, so
// apostrophe < hyphen < a ... z.
func symbol(c byte) (uint, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 2, true
	case c == Apostrophe:
		return 0, true
	case c == Hyphen:
		return 1, true
	}
	return 0, false
}

// IsCanonical reports whether c may appear in canonical text.
func IsCanonical(c byte) bool {
	_, ok := symbol(c)
	return ok
}

// Canonical returns the form of word used for indexing: ASCII letters in
// lower case, hyphens and apostrophes kept, everything else dropped.
func Canonical(word string) string {
	for i := 0; i < len(word); i++ {
		if !IsCanonical(word[i]) {
			return canonicalize(word)
		}
	}
	return word
}

func canonicalize(word string) string {
	buf := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if IsCanonical(c) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}
