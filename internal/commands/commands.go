package commands

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Kind uint8

const (
	Redraw Kind = iota + 1
	Reveal
	Mark
	Chord
	Forfeit
	NewGame
	Quit
)

func (k Kind) String() string {
	switch k {
	case Redraw:
		return "redraw"
	case Reveal:
		return "reveal"
	case Mark:
		return "mark"
	case Chord:
		return "chord"
	case Forfeit:
		return "forfeit"
	case NewGame:
		return "new"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// GridParams is a custom grid, given as url-encoded
// width=W&height=H&mine_count=M.
type GridParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

type Command struct {
	Kind   Kind
	Point  mines.Point // Reveal, Mark, Chord
	Preset string      // NewGame with a named difficulty
	Params *GridParams // NewGame with custom parameters
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

// Maps known commands to the numbers of arguments they accept
var commandNargs = map[string][]int{
	"g": {0},
	"o": {2},
	"f": {2},
	"c": {2},
	"r": {0},
	"n": {0, 1},
	"q": {0},
}

var commandKinds = map[string]Kind{
	"g": Redraw,
	"o": Reveal,
	"f": Mark,
	"c": Chord,
	"r": Forfeit,
	"n": NewGame,
	"q": Quit,
}

const Help = `commands:
  o X Y   reveal the cell at X:Y
  f X Y   mark or unmark the cell at X:Y
  c X Y   reveal around a satisfied number at X:Y
  r       give up and reveal the board
  g       redraw the board
  n       start over with the same grid
  n NAME  start a new game with a named difficulty
  n width=W&height=H&mine_count=M
          start a new game with a custom grid
  q       quit`

func parseXY(twoStrings []string) (p mines.Point, err error) {
	if p.X, err = strconv.Atoi(twoStrings[0]); err != nil {
		return p, errors.New("first argument must be an int")
	}
	if p.Y, err = strconv.Atoi(twoStrings[1]); err != nil {
		return p, errors.New("second argument must be an int")
	}
	return p, nil
}

func decodeGridParams(query string) (*GridParams, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("malformed grid parameters: %w", err)
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var params GridParams
	if err := dec.Decode(&params, values); err != nil {
		return nil, fmt.Errorf("invalid grid parameters: %w", err)
	}
	return &params, nil
}

// Parse reads a single command line.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrUnknownCommand
	}
	name, args := strings.ToLower(parts[0]), parts[1:]
	nargs, ok := commandNargs[name]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if !slices.Contains(nargs, len(args)) {
		return Command{}, fmt.Errorf("%w for %q", ErrNargs, name)
	}

	cmd := Command{Kind: commandKinds[name]}
	switch cmd.Kind {
	case Reveal, Mark, Chord:
		p, err := parseXY(args)
		if err != nil {
			return Command{}, err
		}
		cmd.Point = p
	case NewGame:
		if len(args) == 0 {
			break
		}
		if strings.Contains(args[0], "=") {
			params, err := decodeGridParams(args[0])
			if err != nil {
				return Command{}, err
			}
			cmd.Params = params
		} else {
			cmd.Preset = args[0]
		}
	}
	return cmd, nil
}
