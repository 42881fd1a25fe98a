package boggle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smhanov/boggle/lextree"
)

// MinWordLength is the length of the shortest word Solve reports.
const MinWordLength = 3

// ErrInvalidArgument is returned by New when the grid cannot be built.
var ErrInvalidArgument = errors.New("invalid argument")

// Dictionary is what the solver needs from a word index. *lextree.Tree
// implements it.
type Dictionary interface {
	HasPrefixOrWord(prefix string) lextree.Match
	Size() int
}

// Cell is a position on the grid.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Path is a sequence of adjacent cells.
type Path []Cell

// Grid is a square grid of letters bound to a dictionary.
type Grid struct {
	size    int
	letters string
	cells   []byte // lower case, row-major
	dict    Dictionary
}

// New creates a size x size grid. letters holds the cells row by row and
// must contain exactly size*size ASCII letters, in either case. dict must
// hold at least one word.
func New(size int, letters string, dict Dictionary) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidArgument, size)
	}
	if dict == nil || dict.Size() == 0 {
		return nil, fmt.Errorf("%w: dictionary is empty", ErrInvalidArgument)
	}
	if len(letters)%size != 0 || len(letters)/size != size {
		return nil, fmt.Errorf("%w: a %dx%d grid needs %d letters, got %d",
			ErrInvalidArgument, size, size, size*size, len(letters))
	}

	cells := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		c, ok := toLower(letters[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d is not a letter", ErrInvalidArgument, letters[i], i)
		}
		cells[i] = c
	}

	return &Grid{
		size:    size,
		letters: letters,
		cells:   cells,
		dict:    dict,
	}, nil
}

// Letters returns the letters as they were given to New.
func (g *Grid) Letters() string {
	return g.letters
}

// Size returns the number of rows, which is also the number of columns.
func (g *Grid) Size() int {
	return g.size
}

// At returns the lower case letter at row, col.
func (g *Grid) At(row, col int) byte {
	return g.cells[row*g.size+col]
}

// Contains reports whether word can be spelled by a simple path on the
// grid. The dictionary is not consulted.
func (g *Grid) Contains(word string) bool {
	_, ok := g.Path(word)
	return ok
}

// String renders the grid one row per line, letters separated by spaces.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(2 * len(g.letters))

	for i := 0; i < len(g.letters); i++ {
		switch {
		case i == 0:
		case i%g.size == 0:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		b.WriteByte(g.letters[i])
	}

	return b.String()
}

func (g *Grid) cell(i int) Cell {
	return Cell{Row: i / g.size, Col: i % g.size}
}

func toLower(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c + 'a' - 'A', true
	}
	return 0, false
}
