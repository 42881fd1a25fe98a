package lextree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/mmap"
)

// ErrNotFound is returned when a word list cannot be opened or read.
var ErrNotFound = errors.New("word list not found")

// Load builds a tree from the word list in filename, one word per line.
// The file is mapped into memory for reading.
func Load(filename string) (*Tree, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer f.Close()

	t, err := Read(io.NewSectionReader(f, 0, int64(f.Len())))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, filename, err)
	}
	return t, nil
}

// Read builds a tree from a newline-delimited word list. Surrounding
// whitespace is trimmed; blank lines and lines starting with '#' are
// skipped.
func Read(r io.Reader) (*Tree, error) {
	t := New()
	if err := t.ReadFrom(r); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadFrom inserts every word of a newline-delimited word list into the
// tree.
func (t *Tree) ReadFrom(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		t.Insert(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}
