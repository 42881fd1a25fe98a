package lextree

import "strconv"

// Match is the outcome of a prefix query.
type Match int

const (
	// Absent means no stored word starts with the prefix.
	Absent Match = iota - 1

	// PrefixOnly means some stored words start with the prefix, but the
	// prefix itself is not one of them.
	PrefixOnly

	// CompleteWord means the prefix is a stored word. Longer words may
	// still start with it.
	CompleteWord
)

func (m Match) String() string {
	switch m {
	case Absent:
		return "absent"
	case PrefixOnly:
		return "prefix"
	case CompleteWord:
		return "word"
	}
	return "Match(" + strconv.Itoa(int(m)) + ")"
}

// EnumFn is called for every node visited by Enumerate. prefix holds the
// characters from the root to the node and is only valid during the call.
type EnumFn = func(prefix []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate
// whether enumeration should continue below this node or stop altogether.
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Finder is the read side of the tree. It is what lookups, the grid
// solver and any other consumer of a finished dictionary depend on.
type Finder interface {
	ContainsWord(word string) bool
	HasPrefixOrWord(prefix string) Match
	Words(prefix string) []string
	WordsOfLength(n int) []string
	FindAllPrefixesOf(input string) []string
	Enumerate(fn EnumFn)
	Size() int
	NumNodes() int
}

// Builder adds words to a tree.
type Builder interface {
	Finder
	Insert(word string) bool
}

var _ Builder = (*Tree)(nil)

// Tree is a lexicographic tree of words. The zero value is not usable;
// call New.
type Tree struct {
	root     *Node
	numAdded int
	numNodes int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{
		root:     &Node{},
		numNodes: 1,
	}
}

// FromWords creates a tree holding words.
func FromWords(words []string) *Tree {
	t := New()
	for _, word := range words {
		t.Insert(word)
	}
	return t
}

// Insert adds a word to the tree. It returns true if the word was not
// there before. Words with an empty canonical form are ignored.
func (t *Tree) Insert(word string) bool {
	key := Canonical(word)
	if key == "" {
		return false
	}

	node := t.root
	for i := 0; i < len(key); i++ {
		child := node.Child(key[i])
		if child == nil {
			child = node.addChild(key[i])
			t.numNodes++
		}
		node = child
	}

	if node.final {
		return false
	}
	node.final = true
	t.numAdded++
	return true
}

// ContainsWord reports whether word was inserted.
func (t *Tree) ContainsWord(word string) bool {
	key := Canonical(word)
	if key == "" || t == nil {
		return false
	}
	node := t.find(key)
	return node != nil && node.final
}

// HasPrefixOrWord tells whether prefix leads anywhere in the tree, and
// whether it is a word on its own.
func (t *Tree) HasPrefixOrWord(prefix string) Match {
	if t == nil {
		return Absent
	}
	node := t.find(Canonical(prefix))
	switch {
	case node == nil:
		return Absent
	case node.final:
		return CompleteWord
	}
	return PrefixOnly
}

// Words returns, in alphabetical order, all words that start with prefix.
// An empty prefix returns every word.
func (t *Tree) Words(prefix string) []string {
	key := Canonical(prefix)
	node := t.find(key)
	if node == nil {
		return nil
	}

	var words []string
	enumerate(node, []byte(key), func(word []byte, final bool) EnumerationResult {
		if final {
			words = append(words, string(word))
		}
		return Continue
	})
	return words
}

// WordsOfLength returns, in alphabetical order, all words of exactly n
// characters. It returns nothing when n <= 0.
func (t *Tree) WordsOfLength(n int) []string {
	if n <= 0 || t == nil {
		return nil
	}

	var words []string
	enumerate(t.root, make([]byte, 0, n), func(word []byte, final bool) EnumerationResult {
		if len(word) < n {
			return Continue
		}
		if final {
			words = append(words, string(word))
		}
		return Skip
	})
	return words
}

// FindAllPrefixesOf returns all words in the tree that are a prefix of
// input, shortest first.
func (t *Tree) FindAllPrefixesOf(input string) []string {
	if t == nil {
		return nil
	}

	key := Canonical(input)
	var results []string
	node := t.root
	for i := 0; i < len(key); i++ {
		node = node.Child(key[i])
		if node == nil {
			break
		}
		if node.final {
			results = append(results, key[:i+1])
		}
	}
	return results
}

// Size returns the number of words in the tree.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return t.numAdded
}

// NumNodes returns the number of nodes, the root included.
func (t *Tree) NumNodes() int {
	if t == nil {
		return 0
	}
	return t.numNodes
}

// Root returns the root node. It represents the empty prefix.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Enumerate will call the given method, passing it every prefix in the
// tree in alphabetical order, starting with the empty one.
// Return Continue to continue enumeration, Skip to skip this branch, or
// Stop to stop enumeration.
func (t *Tree) Enumerate(fn EnumFn) {
	if t == nil {
		return
	}
	enumerate(t.root, nil, fn)
}

func (t *Tree) find(key string) *Node {
	if t == nil {
		return nil
	}
	node := t.root
	for i := 0; i < len(key) && node != nil; i++ {
		node = node.Child(key[i])
	}
	return node
}

func enumerate(node *Node, prefix []byte, fn EnumFn) EnumerationResult {
	result := fn(prefix, node.final)
	if result != Continue {
		return result
	}

	l := len(prefix)
	prefix = append(prefix, 0)

	for _, child := range node.children {
		prefix[l] = child.ch
		if enumerate(child, prefix, fn) == Stop {
			return Stop
		}
	}

	return Continue
}
