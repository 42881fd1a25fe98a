package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smhanov/boggle/lextree"
)

func (a *app) newWordsCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "words [PREFIX]",
		Short: "List dictionary words by prefix or length",
		Long: `Words prints, in alphabetical order, the dictionary words starting with
PREFIX (all words if it is omitted). With --length only words of that many
characters are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.loadDictionary()
			if err != nil {
				return err
			}

			var prefix string
			if len(args) > 0 {
				prefix = args[0]
			}

			var words []string
			if cmd.Flags().Changed("length") {
				key := lextree.Canonical(prefix)
				for _, word := range dict.WordsOfLength(length) {
					if strings.HasPrefix(word, key) {
						words = append(words, word)
					}
				}
			} else {
				words = dict.Words(prefix)
			}

			out := cmd.OutOrStdout()
			for _, word := range words {
				fmt.Fprintln(out, word)
			}
			a.log.Debug("words listed", "prefix", prefix, "count", len(words))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 0, "only words of this length")

	return cmd
}

func (a *app) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [PREFIX]",
		Short: "Print the dictionary tree under a prefix",
		Long: `Tree prints the part of the dictionary tree reached by PREFIX, one node per
line, indented by depth. Nodes that end a word are marked with '*'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.loadDictionary()
			if err != nil {
				return err
			}

			var prefix string
			if len(args) > 0 {
				prefix = args[0]
			}
			if dict.HasPrefixOrWord(prefix) == lextree.Absent {
				return fmt.Errorf("no word starts with %q", prefix)
			}
			return dict.Dump(cmd.OutOrStdout(), prefix)
		},
	}
}
