package lextree

import (
	"bufio"
	"io"
	"strings"
)

// Dump writes the subtree under prefix to w, one node per line, indented
// by depth. Nodes that end a word are marked with '*'. Nothing is written
// if no word starts with prefix.
//
//	bu *
//	  s *
//	  t *
func (t *Tree) Dump(w io.Writer, prefix string) error {
	key := Canonical(prefix)
	node := t.find(key)
	if node == nil {
		return nil
	}

	bw := bufio.NewWriter(w)
	enumerate(node, []byte(key), func(word []byte, final bool) EnumerationResult {
		depth := len(word) - len(key)
		if depth == 0 {
			if key == "" {
				bw.WriteString("(root)")
			} else {
				bw.WriteString(key)
			}
		} else {
			bw.WriteString(strings.Repeat("  ", depth))
			bw.WriteByte(word[len(word)-1])
		}
		if final {
			bw.WriteString(" *")
		}
		bw.WriteByte('\n')
		return Continue
	})
	return bw.Flush()
}
