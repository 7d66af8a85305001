package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const prompt = "> "

func play(cmd *cobra.Command, opts *options, logger *slog.Logger) error {
	presets, err := config.LoadPresets(opts.presets)
	if err != nil {
		return err
	}
	difficulty, err := opts.pickDifficulty(cmd, presets)
	if err != nil {
		return err
	}
	rnd, err := opts.newRand(cmd)
	if err != nil {
		return err
	}
	journalCfg, err := opts.journalConfig(cmd)
	if err != nil {
		return err
	}
	events, err := journal.New(journalCfg)
	if err != nil {
		return err
	}
	mines.Log = events

	s, err := session.New(difficulty, presets, rnd, events)
	if err != nil {
		return err
	}
	logger.Debug("game ready",
		"difficulty", difficulty.String(),
		"journal", journalCfg.Filename,
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Reading stdin cannot be interrupted, so the reader stays outside the
	// group and is abandoned on exit.
	lines := make(chan string)
	go readLines(ctx, cmd.InOrStdin(), lines)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.RunClock(gCtx, opts.tick)
	})
	g.Go(func() error {
		defer cancel()
		return loop(gCtx, s, lines, cmd.OutOrStdout())
	})
	return g.Wait()
}

func readLines(ctx context.Context, r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

func loop(ctx context.Context, s *session.Session, lines <-chan string, w io.Writer) error {
	render(w, s)
	for {
		fmt.Fprint(w, prompt)
		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(w)
				return nil
			}
			line = l
		}

		cmd, err := commands.Parse(line)
		if err != nil {
			fmt.Fprintln(w, err)
			fmt.Fprintln(w, commands.Help)
			continue
		}
		if cmd.Kind == commands.Quit {
			return nil
		}

		out, err := s.Execute(cmd)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		if out.Result == mines.Changed || cmd.Kind == commands.Redraw {
			render(w, s)
		}
	}
}

func render(w io.Writer, s *session.Session) {
	fmt.Fprint(w, s.Board())
	fmt.Fprintln(w, s.Status())
}
