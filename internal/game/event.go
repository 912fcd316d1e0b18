package game

import "errors"

// ErrQuit is returned by [Controller.HandleEvent] when the player asks to
// leave the game.
var ErrQuit = errors.New("quit requested")

type Screen int

const (
	MenuScreen Screen = iota
	BoardScreen
)

func (s Screen) String() string {
	switch s {
	case MenuScreen:
		return "menu"
	case BoardScreen:
		return "board"
	default:
		return "unknown"
	}
}

type EventKind uint8

const (
	PrimaryClick EventKind = iota + 1 // reveal
	SecondaryClick                    // flag toggle
	ButtonPress
)

type Button uint8

const (
	ButtonPlay Button = iota + 1
	ButtonQuit
	ButtonRandomMove
	ButtonReset
	ButtonMenu
)

func (b Button) String() string {
	switch b {
	case ButtonPlay:
		return "play"
	case ButtonQuit:
		return "quit"
	case ButtonRandomMove:
		return "random move"
	case ButtonReset:
		return "reset"
	case ButtonMenu:
		return "menu"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind     EventKind
	Row, Col int
	Button   Button
}

func Reveal(row, col int) Event {
	return Event{Kind: PrimaryClick, Row: row, Col: col}
}

func Flag(row, col int) Event {
	return Event{Kind: SecondaryClick, Row: row, Col: col}
}

func Press(b Button) Event {
	return Event{Kind: ButtonPress, Button: b}
}
