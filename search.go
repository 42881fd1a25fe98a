package boggle

import (
	"context"
	"maps"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/smhanov/boggle/lextree"
)

// offsets of the eight neighbours of a cell, clipped at the borders.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// neighbours returns the cells adjacent to i, using buf for storage.
func (g *Grid) neighbours(i int, buf *[8]int) []int {
	row, col := i/g.size, i%g.size
	out := buf[:0]
	for _, off := range offsets {
		r, c := row+off[0], col+off[1]
		if r >= 0 && r < g.size && c >= 0 && c < g.size {
			out = append(out, r*g.size+c)
		}
	}
	return out
}

// visited marks the cells on the current path.
type visited []uint64

func newVisited(n int) visited {
	return make(visited, (n+63)/64)
}

func (v visited) has(i int) bool {
	return v[i>>6]&(1<<(i&63)) != 0
}

func (v visited) set(i int) {
	v[i>>6] |= 1 << (i & 63)
}

func (v visited) clear(i int) {
	v[i>>6] &^= 1 << (i & 63)
}

// search is the state of one depth-first walk. It is not shared between
// goroutines.
type search struct {
	g       *Grid
	visited visited
	word    []byte
	found   map[string]struct{}
	done    <-chan struct{}
}

func (g *Grid) newSearch(done <-chan struct{}) *search {
	return &search{
		g:       g,
		visited: newVisited(len(g.cells)),
		word:    make([]byte, 0, len(g.cells)),
		found:   make(map[string]struct{}),
		done:    done,
	}
}

// visit extends the current path with cell i and explores every way to
// continue it. It returns false if the search was cancelled.
func (s *search) visit(i int) bool {
	if s.done != nil {
		select {
		case <-s.done:
			return false
		default:
		}
	}

	s.word = append(s.word, s.g.cells[i])
	match := s.g.dict.HasPrefixOrWord(string(s.word))
	if match == lextree.CompleteWord && len(s.word) >= MinWordLength {
		s.found[string(s.word)] = struct{}{}
	}

	ok := true
	if match != lextree.Absent {
		s.visited.set(i)
		var buf [8]int
		for _, n := range s.g.neighbours(i, &buf) {
			if !s.visited.has(n) && !s.visit(n) {
				ok = false
				break
			}
		}
		s.visited.clear(i)
	}

	s.word = s.word[:len(s.word)-1]
	return ok
}

// Solve returns, in alphabetical order, every dictionary word of at least
// MinWordLength letters that can be spelled on the grid.
func (g *Grid) Solve() []string {
	s := g.newSearch(nil)
	for i := range g.cells {
		s.visit(i)
	}
	return slices.Sorted(maps.Keys(s.found))
}

// SolveContext is Solve with the starting cells shared among up to
// workers goroutines. If workers <= 0, GOMAXPROCS is used. It stops early
// and returns the context's error if ctx is cancelled.
func (g *Grid) SolveContext(ctx context.Context, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu    sync.Mutex
		found = make(map[string]struct{})
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range g.cells {
		eg.Go(func() error {
			s := g.newSearch(ctx.Done())
			if !s.visit(i) {
				return ctx.Err()
			}

			mu.Lock()
			maps.Copy(found, s.found)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(found)), nil
}

// Path returns the cells of a simple path spelling word, if there is one.
// Cells are tried in row-major order, so the path returned is the first
// one found from the top-left corner. word must consist of ASCII letters
// only; the dictionary is not consulted.
func (g *Grid) Path(word string) (Path, bool) {
	key, ok := normalize(word)
	if !ok || len(key) > len(g.cells) {
		return nil, false
	}

	t := &tracer{
		g:       g,
		word:    key,
		visited: newVisited(len(g.cells)),
		cells:   make([]int, 0, len(key)),
	}
	for i := range g.cells {
		if t.trace(i) {
			path := make(Path, len(t.cells))
			for j, c := range t.cells {
				path[j] = g.cell(c)
			}
			return path, true
		}
	}
	return nil, false
}

type tracer struct {
	g       *Grid
	word    []byte
	visited visited
	cells   []int
}

// trace tries to spell the rest of the word starting on cell i.
func (t *tracer) trace(i int) bool {
	if t.g.cells[i] != t.word[len(t.cells)] {
		return false
	}

	t.cells = append(t.cells, i)
	if len(t.cells) == len(t.word) {
		return true
	}

	t.visited.set(i)
	var buf [8]int
	for _, n := range t.g.neighbours(i, &buf) {
		if !t.visited.has(n) && t.trace(n) {
			return true
		}
	}
	t.visited.clear(i)

	t.cells = t.cells[:len(t.cells)-1]
	return false
}

// normalize lower-cases word. It fails on empty input and on anything
// that is not an ASCII letter.
func normalize(word string) ([]byte, bool) {
	if word == "" {
		return nil, false
	}
	key := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		c, ok := toLower(word[i])
		if !ok {
			return nil, false
		}
		key[i] = c
	}
	return key, true
}
