package main

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

type options struct {
	difficulty string
	width      int
	height     int
	mineCount  int
	presets    string
	seed       uint64
	journal    string

	tick time.Duration // clock resolution, overridden in tests
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	return buildRootCommand(logger, &options{tick: time.Second})
}

func buildRootCommand(logger *slog.Logger, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mines",
		Short: "Play minesweeper in the terminal",
		Long: `Play minesweeper in the terminal.

Cells are addressed as X Y, counting from 0 at the top left corner.
The first cell you open is never a mine.

` + commands.Help,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, opts, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.difficulty, "difficulty", "d", config.DefaultDifficulty, "named difficulty")
	cmd.Flags().IntVar(&opts.width, "width", 0, "custom grid width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "custom grid height")
	cmd.Flags().IntVar(&opts.mineCount, "mines", 0, "custom number of mines")
	cmd.Flags().StringVar(&opts.presets, "presets", config.PresetsFile(), "YAML file with extra difficulties")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible mine placement")
	cmd.Flags().StringVar(&opts.journal, "journal", "", "file to record game events to")

	cmd.MarkFlagsRequiredTogether("width", "height", "mines")
	cmd.MarkFlagsMutuallyExclusive("difficulty", "width")

	return cmd
}

func (opts *options) pickDifficulty(cmd *cobra.Command, presets config.Presets) (config.Difficulty, error) {
	if cmd.Flags().Changed("width") {
		return config.Difficulty{
			Name:      "custom",
			Width:     opts.width,
			Height:    opts.height,
			MineCount: opts.mineCount,
		}, nil
	}
	return presets.Lookup(opts.difficulty)
}

func (opts *options) newRand(cmd *cobra.Command) (*rand.Rand, error) {
	if cmd.Flags().Changed("seed") {
		return rand.New(rand.NewPCG(opts.seed, opts.seed)), nil
	}
	seed, ok, err := config.Seed()
	if err != nil {
		return nil, err
	}
	if ok {
		return rand.New(rand.NewPCG(seed, seed)), nil
	}
	return mines.NewRand(), nil
}

func (opts *options) journalConfig(cmd *cobra.Command) (config.Journal, error) {
	cfg, err := config.NewJournal()
	if err != nil {
		return config.Journal{}, errors.Join(errors.New("invalid journal settings"), err)
	}
	if cmd.Flags().Changed("journal") {
		cfg.Filename = opts.journal
	}
	return *cfg, nil
}
