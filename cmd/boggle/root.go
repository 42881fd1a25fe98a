package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vyevs/vtools"

	"github.com/smhanov/boggle"
	"github.com/smhanov/boggle/lextree"
)

// app holds the state shared by every command of one invocation.
type app struct {
	cfgFile string
	verbose bool

	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "boggle",
		Short: "Find the words hidden in a grid of letters",
		Long: `boggle loads a word list into a lexicographic tree and finds every word
of the list that can be traced on a square grid of letters, moving from a
cell to any of its eight neighbours without using a cell twice.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./.boggle.yaml or ~/.boggle.yaml)")
	rootCmd.PersistentFlags().String("dict", "", "word list, one word per line")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress and timings to stderr")

	rootCmd.AddCommand(
		a.newSolveCmd(),
		a.newContainsCmd(),
		a.newTraceCmd(),
		a.newWordsCmd(),
		a.newTreeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// init loads the configuration and sets up logging before any command runs.
func (a *app) init(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	v, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag(cfgKeyDict, cmd.Root().PersistentFlags().Lookup("dict")); err != nil {
		return fmt.Errorf("bind dict flag: %w", err)
	}
	a.v = v

	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", "path", used)
	}
	return nil
}

// loadDictionary reads the word list named by the dict setting.
func (a *app) loadDictionary() (*lextree.Tree, error) {
	path := a.v.GetString(cfgKeyDict)
	if path == "" {
		return nil, fmt.Errorf("no word list: use --dict or set %q in the config file", cfgKeyDict)
	}

	if a.verbose {
		defer vtools.TimeIt(time.Now(), "loading "+path)
	}

	dict, err := lextree.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	a.log.Debug("dictionary loaded", "path", path, "words", dict.Size(), "nodes", dict.NumNodes())
	return dict, nil
}

// newGrid builds a grid from the SIZE and LETTERS arguments.
func (a *app) newGrid(sizeArg, letters string) (*boggle.Grid, error) {
	size, err := strconv.Atoi(sizeArg)
	if err != nil {
		return nil, fmt.Errorf("invalid grid size %q: %w", sizeArg, err)
	}

	dict, err := a.loadDictionary()
	if err != nil {
		return nil, err
	}

	return boggle.New(size, letters, dict)
}
