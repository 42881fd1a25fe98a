package boggle_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smhanov/boggle"
	"github.com/smhanov/boggle/lextree"
)

const wikipediaLetters = "rhreypcswnsntego"

var wikipediaWords = []string{
	"ces", "cesse", "cessent", "cresson", "ego", "encre", "encres", "engonce",
	"engoncer", "engonces", "esse", "gens", "gent", "gesse", "gnose", "gosse",
	"nes", "net", "nos", "once", "onces", "ose", "osent", "pre", "pres",
	"presse", "pressent", "ressent", "sec", "secs", "sen", "sent", "set", "son",
	"songe", "songent", "sons", "tenson", "tensons", "tes",
}

func loadDictionary(t testing.TB) *lextree.Tree {
	t.Helper()
	dict, err := lextree.Load(filepath.Join("testdata", "wikipedia.txt"))
	require.NoError(t, err)
	return dict
}

func TestWikipediaExample(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)

	assert.Equal(t, wikipediaLetters, g.Letters())
	assert.True(t, g.Contains("songent"))
	assert.False(t, g.Contains("sono"))
	assert.Equal(t, wikipediaWords, g.Solve())
}

func TestUpperCaseGrid(t *testing.T) {
	letters := strings.ToUpper(wikipediaLetters)
	g, err := boggle.New(4, letters, loadDictionary(t))
	require.NoError(t, err)

	assert.Equal(t, letters, g.Letters())
	assert.True(t, g.Contains("SONGENT"))
	assert.True(t, g.Contains("Songent"))
	assert.Equal(t, wikipediaWords, g.Solve())
}

func TestSolveExcludesShortAndUnspellableWords(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)

	words := g.Solve()
	for _, word := range []string{"os", "se", "re", "sono", "c'est", "sen-sen", "zebre"} {
		assert.NotContains(t, words, word)
	}
	for _, word := range words {
		assert.GreaterOrEqual(t, len(word), boggle.MinWordLength)
		assert.True(t, g.Contains(word), "solved word %s cannot be traced", word)
	}
}

func TestSingleCellGrid(t *testing.T) {
	dict := lextree.FromWords([]string{"a", "aa", "aaa", "b"})

	for _, letter := range []string{"a", "b", "z", "A"} {
		g, err := boggle.New(1, letter, dict)
		require.NoError(t, err)
		assert.Empty(t, g.Solve(), "grid %q", letter)
		assert.False(t, g.Contains("aaa"))
	}
}

func TestNoCellReuse(t *testing.T) {
	dict := lextree.FromWords([]string{"ses", "esse", "sese", "eses"})
	g, err := boggle.New(3, "ssssessss", dict)
	require.NoError(t, err)

	assert.True(t, g.Contains("ses"))
	assert.True(t, g.Contains("sss"))
	assert.False(t, g.Contains("sese"))
	assert.False(t, g.Contains("esse"))
	assert.False(t, g.Contains("ee"))
	assert.Equal(t, []string{"ses"}, g.Solve())
}

func TestNoCellReuseAcrossBranches(t *testing.T) {
	// Every cell of a 2x2 grid touches the three others, so a word can be
	// spelled exactly when the grid holds enough of each of its letters.
	dict := lextree.FromWords([]string{"abab", "abba", "aba", "baa"})
	g, err := boggle.New(2, "abba", dict)
	require.NoError(t, err)

	assert.Equal(t, []string{"aba", "abab", "abba", "baa"}, g.Solve())

	g, err = boggle.New(2, "abbb", dict)
	require.NoError(t, err)
	assert.Empty(t, g.Solve())
}

func TestContainsRejectsBadInput(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)

	for _, word := range []string{"", " ", "son ge", "songe\n", "s0n", "son-ge", "c'es", "sóngé", strings.Repeat("s", 17)} {
		assert.False(t, g.Contains(word), "word %q", word)
	}
}

func TestPath(t *testing.T) {
	dict := lextree.FromWords([]string{"aei"})
	g, err := boggle.New(3, "abcdefghi", dict)
	require.NoError(t, err)

	path, ok := g.Path("aei")
	require.True(t, ok)
	assert.Equal(t, boggle.Path{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, path)

	path, ok = g.Path("FEB")
	require.True(t, ok)
	assert.Equal(t, boggle.Path{{Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 0, Col: 1}}, path)

	_, ok = g.Path("aci")
	assert.False(t, ok)
}

func TestPathIsSimpleAndAdjacent(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)

	for _, word := range wikipediaWords {
		path, ok := g.Path(word)
		require.True(t, ok, word)
		require.Len(t, path, len(word))

		seen := make(map[boggle.Cell]bool)
		for i, cell := range path {
			assert.Equal(t, word[i], g.At(cell.Row, cell.Col))
			assert.False(t, seen[cell], "cell %v reused in %s", cell, word)
			seen[cell] = true

			if i > 0 {
				prev := path[i-1]
				assert.LessOrEqual(t, abs(cell.Row-prev.Row), 1)
				assert.LessOrEqual(t, abs(cell.Col-prev.Col), 1)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestString(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)
	assert.Equal(t, "r h r e\ny p c s\nw n s n\nt e g o", g.String())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, byte('g'), g.At(3, 2))

	g, err = boggle.New(1, "Q", loadDictionary(t))
	require.NoError(t, err)
	assert.Equal(t, "Q", g.String())
}

func TestInvalidArguments(t *testing.T) {
	dict := loadDictionary(t)
	var nilTree *lextree.Tree

	tests := []struct {
		name    string
		size    int
		letters string
		dict    boggle.Dictionary
	}{
		{"negative size", -1, wikipediaLetters, dict},
		{"zero size", 0, "", dict},
		{"zero size with letters", 0, wikipediaLetters, dict},
		{"too few letters", 4, wikipediaLetters[:15], dict},
		{"too many letters", 4, wikipediaLetters + "a", dict},
		{"wrong size", 3, wikipediaLetters, dict},
		{"no letters", 4, "", dict},
		{"nil dictionary", 4, wikipediaLetters, nil},
		{"nil tree", 4, wikipediaLetters, nilTree},
		{"empty dictionary", 4, wikipediaLetters, lextree.New()},
		{"digit", 4, "rhreypcswnsnteg0", dict},
		{"space", 4, "rhreypcswnsnteg ", dict},
		{"hyphen", 4, "rhreypcswnsnteg-", dict},
		{"apostrophe", 4, "'hreypcswnsntego", dict},
		{"accent", 2, "éab", dict},
		{"accent fills the grid", 2, "éé", dict},
		{"huge size", 1 << 20, "", dict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := boggle.New(tt.size, tt.letters, tt.dict)
			require.Error(t, err)
			assert.True(t, errors.Is(err, boggle.ErrInvalidArgument), "got %v", err)
			assert.Nil(t, g)
		})
	}
}

func TestSolveContext(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)

	for _, workers := range []int{-1, 0, 1, 3, 16, 64} {
		words, err := g.SolveContext(context.Background(), workers)
		require.NoError(t, err)
		assert.Equal(t, wikipediaWords, words, "workers=%d", workers)
	}
}

func TestSolveContextCancelled(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	words, err := g.SolveContext(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, words)
}

func TestSolveIsRepeatable(t *testing.T) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(t))
	require.NoError(t, err)

	first := g.Solve()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, g.Solve())
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		word  string
		score int
	}{
		{"", 0},
		{"os", 0},
		{"son", 1},
		{"sons", 1},
		{"songe", 2},
		{"tenson", 3},
		{"songent", 5},
		{"pressent", 11},
		{"engonces", 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.score, boggle.Score(tt.word), tt.word)
	}
	assert.Equal(t, 1+2+5, boggle.TotalScore([]string{"son", "songe", "songent"}))
}

func BenchmarkSolve(b *testing.B) {
	g, err := boggle.New(4, wikipediaLetters, loadDictionary(b))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Solve()
	}
}
