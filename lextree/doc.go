/*
Package lextree is a lexicographic tree (a trie) holding a dictionary of words.

Every node stands for one character position shared by all of the words that
pass through it. A node knows the character it represents, whether a word ends
exactly on it, and its children. Children are kept in a dense slice ordered by
character, alongside a 32 bit mask telling which characters are present, so a
child is found in constant time and an in-order walk yields words in
lexicographic order without any sorting.

The alphabet is the lower case ASCII letters plus the hyphen and the
apostrophe. All text goes through Canonical before it touches the tree: upper
case ASCII letters are folded to lower case and every other character is
dropped. Insertion, lookups and prefix queries share that rule, so a word that
was inserted is always found again by the same spelling.

To use it, create a tree with New() and Insert words, or build it in one go
with FromWords, Read or Load. The tree is append-only: words are never removed.
A finished tree may be read from many goroutines at once, but it must not be
written to while it is being read.
*/
package lextree
