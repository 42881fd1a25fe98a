/*
Package boggle finds the words hidden in a square grid of letters, as in the
game of the same name.

A word is spelled by a simple path: a sequence of cells where each one touches
the previous one horizontally, vertically or diagonally, and no cell is used
twice. Only words of at least MinWordLength letters that are in the dictionary
count.

The search is a depth-first walk started from every cell. At each step the
letters gathered so far are looked up in the dictionary with a prefix query;
as soon as no word starts with them the branch is abandoned. That pruning is
what makes an exhaustive search of the grid affordable.

In general, to use it you load a dictionary with the lextree package, then
create a grid with New(). Solve() returns every word found, each one once, in
alphabetical order. SolveContext() does the same work spread over several
goroutines, one starting cell at a time. A Grid never changes after New() and
can be searched from many goroutines at once.
*/
package boggle
