package term

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/Yxrk845/Buscaminas/internal/game"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errNargs          = errors.New("invalid number of arguments")
	errNoBoard        = errors.New("no game in progress, use p to play")
	errOutOfBounds    = errors.New("invalid square coordinates")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"p": 0,
	"o": 2,
	"f": 2,
	"a": 0,
	"n": 0,
	"m": 0,
	"g": 0,
	"q": 0,
}

var pressed = map[string]game.Button{
	"p": game.ButtonPlay,
	"a": game.ButtonRandomMove,
	"n": game.ButtonReset,
	"m": game.ButtonMenu,
	"q": game.ButtonQuit,
}

type point struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func decodePoint(args []string) (point, error) {
	pointDecoder := schema.NewDecoder()
	pointDecoder.IgnoreUnknownKeys(true)
	src := map[string][]string{
		"row": {args[0]},
		"col": {args[1]},
	}
	var p point
	if err := pointDecoder.Decode(&p, src); err != nil {
		return p, fmt.Errorf("invalid coordinates: %w", err)
	}
	return p, nil
}

// parseCommand turns one input line into a controller event. The "g" command
// only asks for a redraw and yields ok == false.
func parseCommand(line string) (e game.Event, ok bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return e, false, errUnknownCommand
	}
	nargs, known := commandNargs[parts[0]]
	if !known {
		return e, false, errUnknownCommand
	}
	if nargs != len(parts)-1 {
		return e, false, errNargs
	}
	switch parts[0] {
	case "g":
		return e, false, nil
	case "o", "f":
		p, err := decodePoint(parts[1:])
		if err != nil {
			return e, false, err
		}
		if parts[0] == "o" {
			return game.Reveal(p.Row, p.Col), true, nil
		}
		return game.Flag(p.Row, p.Col), true, nil
	}
	return game.Press(pressed[parts[0]]), true, nil
}
