// Package session drives one player's games: it owns the current grid,
// applies commands to it and keeps the game clock.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Session is driven from a single goroutine; only the clock may run
// alongside it.
type Session struct {
	id         string
	grid       *mines.Grid
	difficulty config.Difficulty
	presets    config.Presets
	rnd        *rand.Rand
	log        logrus.FieldLogger

	elapsed *atomic.Int64 // seconds
	running *atomic.Bool  // grid is live
}

func New(
	d config.Difficulty,
	presets config.Presets,
	rnd *rand.Rand,
	log logrus.FieldLogger,
) (*Session, error) {
	s := &Session{
		presets: presets,
		rnd:     rnd,
		log:     log,
		elapsed: atomic.NewInt64(0),
		running: atomic.NewBool(false),
	}
	if err := s.start(d); err != nil {
		return nil, err
	}
	return s, nil
}

// start replaces the grid with a fresh one built for d.
func (s *Session) start(d config.Difficulty) error {
	grid, err := mines.NewGrid(d.Width, d.Height, d.MineCount, mines.WithRand(s.rnd))
	if err != nil {
		return fmt.Errorf("unable to start %s game: %w", d.Name, err)
	}
	s.grid = grid
	s.difficulty = d
	s.restart()
	return nil
}

func (s *Session) restart() {
	s.id = uuid.Must(uuid.NewV7()).String()
	s.elapsed.Store(0)
	s.running.Store(false)
	s.log.WithFields(logrus.Fields{
		"game":       s.id,
		"difficulty": s.difficulty.String(),
	}).Info("new game")
}

func (s *Session) ID() string { return s.id }

func (s *Session) Grid() *mines.Grid { return s.grid }

func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

func (s *Session) Elapsed() int64 { return s.elapsed.Load() }

// Execute applies cmd to the current game. Errors about the command itself
// (bad coordinates, unknown difficulty) leave the game untouched.
func (s *Session) Execute(cmd commands.Command) (out mines.Outcome, err error) {
	switch cmd.Kind {
	case commands.Reveal:
		out, err = s.grid.Reveal(cmd.Point)
		s.finish(&out)
	case commands.Mark:
		out, err = s.grid.ToggleMark(cmd.Point)
	case commands.Chord:
		out, err = s.grid.Chord(cmd.Point)
		s.finish(&out)
	case commands.Forfeit:
		out = s.grid.Forfeit()
	case commands.NewGame:
		out = mines.Outcome{Result: mines.Changed}
		if err = s.newGame(cmd); err != nil {
			out.Result = mines.NoOp
		}
		out.State = s.grid.State()
	default:
		out = mines.Outcome{Result: mines.NoOp, State: s.grid.State()}
	}

	s.running.Store(s.grid.State() == mines.Live)

	entry := s.log.WithFields(logrus.Fields{
		"game":    s.id,
		"command": cmd.Kind.String(),
		"x":       cmd.Point.X,
		"y":       cmd.Point.Y,
		"result":  out.Result.String(),
		"state":   out.State.String(),
	})
	if err != nil {
		entry.WithError(err).Debug("command rejected")
	} else {
		entry.Debug("command applied")
	}
	return out, err
}

// finish shows the whole board once a move has blown up a mine, and flags
// every mine once the last safe cell is open.
func (s *Session) finish(out *mines.Outcome) {
	if out.Result != mines.Changed {
		return
	}
	switch out.State {
	case mines.Lost:
		out.Revealed = append(out.Revealed, s.grid.RevealAll()...)
	case mines.Won:
		for _, c := range s.grid.Mines() {
			c.Mark()
		}
	}
}

func (s *Session) newGame(cmd commands.Command) error {
	switch {
	case cmd.Params != nil:
		return s.start(config.Difficulty{
			Name:      "custom",
			Width:     cmd.Params.Width,
			Height:    cmd.Params.Height,
			MineCount: cmd.Params.MineCount,
		})
	case cmd.Preset != "":
		d, err := s.presets.Lookup(cmd.Preset)
		if err != nil {
			return err
		}
		return s.start(d)
	default:
		s.grid.Reset()
		s.restart()
		return nil
	}
}

// Tick advances the clock by a second if a game is in progress.
func (s *Session) Tick() {
	if s.running.Load() {
		s.elapsed.Inc()
	}
}

// RunClock ticks every interval until ctx is done.
func (s *Session) RunClock(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

func (s *Session) Board() string {
	return s.grid.String()
}

func (s *Session) Status() string {
	var state string
	switch s.grid.State() {
	case mines.Uninitialized:
		state = "make your first move"
	case mines.Live:
		state = "playing"
	case mines.Lost:
		state = "YOU LOSE"
	case mines.Won:
		state = "YOU WIN!!"
	}
	return fmt.Sprintf(
		"%s | mines left: %d | time: %ds | %s",
		s.difficulty, s.grid.MinesLeft(), s.elapsed.Load(), state,
	)
}
