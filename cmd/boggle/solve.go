package main

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/vyevs/vtools"

	"github.com/smhanov/boggle"
)

func (a *app) newSolveCmd() *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "solve SIZE LETTERS",
		Short: "List every dictionary word on the grid",
		Long: `Solve prints the grid, then every word of at least three letters that can
be traced on it, with its score, then the totals.

LETTERS holds the SIZE*SIZE cells row by row.`,
		Example: "  boggle solve --dict words.txt 4 rhreypcswnsntego",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlag(cfgKeyWorkers, cmd.Flags().Lookup("workers")); err != nil {
				return fmt.Errorf("bind workers flag: %w", err)
			}

			g, err := a.newGrid(args[0], args[1])
			if err != nil {
				return err
			}

			words, err := a.solve(cmd, g)
			if err != nil {
				return err
			}

			switch sortBy {
			case "alpha":
			case "length":
				slices.SortStableFunc(words, func(x, y string) int {
					return cmp.Compare(len(y), len(x))
				})
			default:
				return fmt.Errorf("unknown sort order %q: use alpha or length", sortBy)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", g)
			for _, word := range words {
				fmt.Fprintf(out, "%-16s %2d\n", word, boggle.Score(word))
			}
			fmt.Fprintf(out, "\n%d words, %d points\n", len(words), boggle.TotalScore(words))
			return nil
		},
	}

	cmd.Flags().Int("workers", 0, "goroutines searching the grid (0: one per CPU)")
	cmd.Flags().StringVar(&sortBy, "sort", "alpha", "output order: alpha or length")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, g *boggle.Grid) ([]string, error) {
	workers := a.v.GetInt(cfgKeyWorkers)

	if a.verbose {
		defer vtools.TimeIt(time.Now(), "solving")
	}

	words, err := g.SolveContext(cmd.Context(), workers)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	a.log.Debug("grid solved", "size", g.Size(), "workers", workers, "words", len(words))
	return words, nil
}
