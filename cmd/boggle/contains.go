package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains SIZE LETTERS WORD",
		Short: "Tell whether a word can be traced on the grid",
		Long: `Contains prints "yes" if WORD can be spelled by moving between adjacent
cells of the grid without using a cell twice, and "no" otherwise. The word
does not have to be in the dictionary.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGrid(args[0], args[1])
			if err != nil {
				return err
			}

			answer := "no"
			if g.Contains(args[2]) {
				answer = "yes"
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
