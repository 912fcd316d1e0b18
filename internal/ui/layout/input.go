package layout

import "github.com/Yxrk845/Buscaminas/internal/game"

// PrimaryEvent maps a left click at (x, y) on the given screen to a
// controller event. n is the board size.
func PrimaryEvent(screen game.Screen, x, y, n int) (game.Event, bool) {
	switch screen {
	case game.MenuScreen:
		switch {
		case PlayButton.Contains(x, y):
			return game.Press(game.ButtonPlay), true
		case QuitButton.Contains(x, y):
			return game.Press(game.ButtonQuit), true
		}
	case game.BoardScreen:
		switch {
		case AIButton.Contains(x, y):
			return game.Press(game.ButtonRandomMove), true
		case MenuButton.Contains(x, y):
			return game.Press(game.ButtonMenu), true
		}
		if row, col, ok := CellAt(x, y, n); ok {
			return game.Reveal(row, col), true
		}
	}
	return game.Event{}, false
}

// SecondaryEvent maps a right click to a flag toggle. Buttons ignore right
// clicks.
func SecondaryEvent(screen game.Screen, x, y, n int) (game.Event, bool) {
	if screen != game.BoardScreen {
		return game.Event{}, false
	}
	if row, col, ok := CellAt(x, y, n); ok {
		return game.Flag(row, col), true
	}
	return game.Event{}, false
}
