package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/Yxrk845/Buscaminas/internal/mines"
)

// BoardFunc builds the board for a new game session.
type BoardFunc func(r *rand.Rand) (*mines.Board, error)

// ClassicBoard deals an 8×8 board with 10 mines.
func ClassicBoard(r *rand.Rand) (*mines.Board, error) {
	return mines.NewBoard(mines.ClassicSize, mines.ClassicMineCount, r)
}

// Option configures a [Controller] built by [New].
type Option func(*Controller)

// WithBoardFunc replaces [ClassicBoard] as the source of new boards.
func WithBoardFunc(f BoardFunc) Option {
	return func(c *Controller) {
		c.newBoard = f
	}
}

// Controller owns the board of the current session and turns input events
// into board operations. Every event is processed to completion before the
// next one; a Controller is not safe for concurrent use.
type Controller struct {
	logger   *slog.Logger
	rnd      *rand.Rand
	newBoard BoardFunc
	board    *mines.Board
	screen   Screen
	session  uuid.UUID
}

// New returns a controller showing the menu, with no board dealt yet.
func New(logger *slog.Logger, rnd *rand.Rand, opts ...Option) *Controller {
	c := &Controller{
		logger:   logger,
		rnd:      rnd,
		newBoard: ClassicBoard,
		screen:   MenuScreen,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start leaves the menu and begins a new session.
func (c *Controller) Start() {
	c.Reset()
}

// Reset discards the current board and deals a new one.
func (c *Controller) Reset() {
	board, err := c.newBoard(c.rnd)
	if err != nil {
		panic(fmt.Errorf("unable to build board: %w", err))
	}
	c.board = board
	c.screen = BoardScreen
	c.session = uuid.New()
	c.logger.Info(
		"new game",
		slog.String("session", c.session.String()),
		slog.Int("size", board.Size()),
		slog.Int("mines", board.MineCount()),
	)
}

// Menu abandons the current session, if any, and shows the menu.
func (c *Controller) Menu() {
	if c.board != nil {
		c.logger.Info(
			"back to menu",
			slog.String("session", c.session.String()),
			slog.String("state", c.board.State().String()),
		)
	}
	c.board = nil
	c.screen = MenuScreen
	c.session = uuid.Nil
}

func (c *Controller) playing() bool {
	return c.board != nil && c.board.State() == mines.Playing
}

func (c *Controller) logTransition(before mines.GameState) {
	after := c.board.State()
	if before == after {
		return
	}
	c.logger.Info(
		"game over",
		slog.String("session", c.session.String()),
		slog.String("state", after.String()),
		slog.Int("revealed", c.board.RevealedCount()),
	)
}

// Reveal opens (row, col) while a game is in progress and returns the
// cells it revealed.
func (c *Controller) Reveal(row, col int) []mines.Point {
	if !c.playing() {
		return nil
	}
	revealed := c.board.Reveal(row, col)
	c.logger.Debug(
		"reveal",
		slog.String("session", c.session.String()),
		slog.Int("row", row),
		slog.Int("col", col),
		slog.Int("revealed", len(revealed)),
	)
	c.logTransition(mines.Playing)
	return revealed
}

// Flag toggles the flag on (row, col) while a game is in progress.
func (c *Controller) Flag(row, col int) bool {
	if !c.playing() {
		return false
	}
	ok := c.board.Flag(row, col)
	c.logger.Debug(
		"flag",
		slog.String("session", c.session.String()),
		slog.Int("row", row),
		slog.Int("col", col),
		slog.Bool("toggled", ok),
	)
	return ok
}

// RandomMove reveals a cell picked uniformly among those neither revealed
// nor flagged. There is no inference behind the pick.
func (c *Controller) RandomMove() (mines.Point, bool) {
	if !c.playing() {
		return mines.Point{}, false
	}
	covered := c.board.Covered()
	if len(covered) == 0 {
		return mines.Point{}, false
	}
	p := covered[c.rnd.IntN(len(covered))]
	c.logger.Debug(
		"random move",
		slog.String("session", c.session.String()),
		slog.String("cell", p.String()),
	)
	c.Reveal(p.Row, p.Col)
	return p, true
}

// State of the current session. Without a board (on the menu) nothing has
// been lost or won, so it is [mines.Playing].
func (c *Controller) State() mines.GameState {
	if c.board == nil {
		return mines.Playing
	}
	return c.board.State()
}

// Screen is the screen currently shown.
func (c *Controller) Screen() Screen {
	return c.screen
}

// Session identifies the current game in logs. It is [uuid.Nil] on the menu.
func (c *Controller) Session() uuid.UUID {
	return c.session
}

// Size is the board width, or 0 on the menu.
func (c *Controller) Size() int {
	if c.board == nil {
		return 0
	}
	return c.board.Size()
}

// MinesRemaining is [mines.Board.MinesRemaining], or 0 on the menu.
func (c *Controller) MinesRemaining() int {
	if c.board == nil {
		return 0
	}
	return c.board.MinesRemaining()
}

// Cell returns a copy of (row, col) of the current board.
func (c *Controller) Cell(row, col int) (mines.Cell, bool) {
	if c.board == nil {
		return mines.Cell{}, false
	}
	return c.board.Cell(row, col)
}

// Status is the display hint for (row, col).
func (c *Controller) Status(row, col int) mines.CellStatus {
	if c.board == nil {
		return mines.Unknown
	}
	return c.board.Status(row, col)
}

// Grid is the display hint of every cell, nil on the menu.
func (c *Controller) Grid() mines.Grid {
	if c.board == nil {
		return nil
	}
	return c.board.Grid()
}

func (c *Controller) String() string {
	if c.board == nil {
		return ""
	}
	return c.board.String()
}

// HandleEvent applies e. Clicks only matter on the board screen. The only
// error is [ErrQuit].
func (c *Controller) HandleEvent(e Event) error {
	switch e.Kind {
	case PrimaryClick:
		if c.screen == BoardScreen {
			c.Reveal(e.Row, e.Col)
		}
	case SecondaryClick:
		if c.screen == BoardScreen {
			c.Flag(e.Row, e.Col)
		}
	case ButtonPress:
		return c.press(e.Button)
	}
	return nil
}

func (c *Controller) press(b Button) error {
	c.logger.Debug(
		"button",
		slog.String("button", b.String()),
		slog.String("screen", c.screen.String()),
	)
	if b == ButtonQuit {
		return ErrQuit
	}
	switch c.screen {
	case MenuScreen:
		if b == ButtonPlay {
			c.Start()
		}
	case BoardScreen:
		switch b {
		case ButtonRandomMove:
			c.RandomMove()
		case ButtonReset:
			c.Reset()
		case ButtonMenu:
			c.Menu()
		}
	}
	return nil
}
