package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vyevs/ansi"

	"github.com/smhanov/boggle"
)

const pathColor = "green"

func (a *app) newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace SIZE LETTERS WORD",
		Short: "Show where a word lies on the grid",
		Long: `Trace prints the grid with the cells spelling WORD highlighted, followed
by the cells in order. Highlighting uses colours unless --color=false, in
which case the path is shown in upper case and the other cells in lower case.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlag(cfgKeyColor, cmd.Flags().Lookup("color")); err != nil {
				return fmt.Errorf("bind color flag: %w", err)
			}

			g, err := a.newGrid(args[0], args[1])
			if err != nil {
				return err
			}

			path, ok := g.Path(args[2])
			if !ok {
				return fmt.Errorf("%q cannot be traced on the grid", args[2])
			}

			out := cmd.OutOrStdout()
			writePath(out, g, path, a.v.GetBool(cfgKeyColor))

			cells := make([]string, len(path))
			for i, c := range path {
				cells[i] = c.String()
			}
			fmt.Fprintf(out, "\n%s: %s\n", strings.ToLower(args[2]), strings.Join(cells, " "))
			return nil
		},
	}

	cmd.Flags().Bool("color", true, "highlight the path with terminal colours")

	return cmd
}

// writePath renders the grid with the cells of path highlighted.
func writePath(w io.Writer, g *boggle.Grid, path boggle.Path, color bool) {
	onPath := make(map[boggle.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}

			ch := g.At(r, c)
			switch {
			case !onPath[boggle.Cell{Row: r, Col: c}]:
				b.WriteByte(ch)
			case color:
				b.WriteString(ansi.FGColorName(pathColor))
				b.WriteByte(ch)
				b.WriteString(ansi.Clear)
			default:
				b.WriteByte(ch - 'a' + 'A')
			}
		}
		b.WriteByte('\n')
	}

	io.WriteString(w, b.String())
}
