package mines

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// Log is the package logger. Its level and output are left to the caller.
var Log = logrus.New()

const (
	ClassicSize      = 8
	ClassicMineCount = 10
)

// Cell is one square of a [Board].
type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	AdjacentMines int // meaningful only when !IsMine
}

// Board is a square minefield. A Board is not safe for concurrent use.
type Board struct {
	size      int
	mineCount int
	cells     []Cell // row-major
	revealed  int
	flagged   int
	state     GameState
}

func newBoard(n, mineCount int) *Board {
	return &Board{
		size:      n,
		mineCount: mineCount,
		cells:     make([]Cell, n*n),
	}
}

// NewBoard places mineCount mines on an n×n board by sampling (row, col)
// pairs from r until that many distinct cells are mined.
func NewBoard(n, mineCount int, r *rand.Rand) (*Board, error) {
	if n <= 0 || mineCount < 0 || mineCount >= n*n {
		return nil, &InvalidParamsError{Size: n, MineCount: mineCount}
	}

	b := newBoard(n, mineCount)

	attempts := 0
	for placed := 0; placed < mineCount; {
		attempts++
		i := b.index(r.IntN(n), r.IntN(n))
		if b.cells[i].IsMine {
			continue
		}
		b.cells[i].IsMine = true
		placed++
	}

	Log.WithFields(logrus.Fields{
		"size":     n,
		"mines":    mineCount,
		"attempts": attempts,
	}).Debug("placed mines")

	b.countAdjacentMines()
	return b, nil
}

// NewBoardWithMines builds an n×n board with mines at exactly the given
// points.
func NewBoardWithMines(n int, mines []Point) (*Board, error) {
	if n <= 0 || len(mines) >= n*n {
		return nil, &InvalidParamsError{Size: n, MineCount: len(mines)}
	}

	b := newBoard(n, len(mines))
	for _, p := range mines {
		if !b.InBounds(p.Row, p.Col) {
			return nil, &InvalidLayoutError{Point: p, Reason: "out of bounds"}
		}
		i := b.index(p.Row, p.Col)
		if b.cells[i].IsMine {
			return nil, &InvalidLayoutError{Point: p, Reason: "duplicate"}
		}
		b.cells[i].IsMine = true
	}

	b.countAdjacentMines()
	return b, nil
}

func (b *Board) countAdjacentMines() {
	for row := range b.size {
		for col := range b.size {
			i := b.index(row, col)
			if b.cells[i].IsMine {
				continue
			}
			count := 0
			fromRow, toRow, fromCol, toCol := neighborhood(b.size, row, col)
			for r := fromRow; r <= toRow; r++ {
				for c := fromCol; c <= toCol; c++ {
					if b.cells[b.index(r, c)].IsMine {
						count++
					}
				}
			}
			b.cells[i].AdjacentMines = count
		}
	}
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.size, Col: i % b.size}
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.size && 0 <= col && col < b.size
}

// Size is the board width and height.
func (b *Board) Size() int {
	return b.size
}

// MineCount is the number of mines placed.
func (b *Board) MineCount() int {
	return b.mineCount
}

// State is Playing until a mine is revealed or every safe cell is.
func (b *Board) State() GameState {
	return b.state
}

// RevealedCount is the number of revealed cells, the exploded mine included.
func (b *Board) RevealedCount() int {
	return b.revealed
}

// FlagCount is the number of flags placed.
func (b *Board) FlagCount() int {
	return b.flagged
}

// MinesRemaining is the mine count minus the number of flags placed. It goes
// negative when the player over-flags.
func (b *Board) MinesRemaining() int {
	return b.mineCount - b.flagged
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.index(row, col)], true
}

func (b *Board) open(i int) {
	b.cells[i].IsRevealed = true
	b.revealed++
}

// Reveal opens the cell at (row, col) and returns every cell it revealed, in
// order. Out of bounds, revealed or flagged cells are ignored, as is any
// reveal once the game is over.
func (b *Board) Reveal(row, col int) (revealed []Point) {
	if b.state != Playing || !b.InBounds(row, col) {
		return nil
	}
	i := b.index(row, col)
	if c := b.cells[i]; c.IsRevealed || c.IsFlagged {
		return nil
	}

	b.open(i)
	revealed = append(revealed, Point{row, col})

	if b.cells[i].IsMine {
		b.state = Lost
		Log.WithField("cell", Point{row, col}).Debug("mine revealed")
		return
	}

	if b.cells[i].AdjacentMines == 0 {
		revealed = b.floodFill(row, col, revealed)
	}

	if b.CheckWin() {
		b.state = Won
	}
	return
}

// floodFill opens every cell reachable from the zero cell at (row, col)
// through other zero cells. The bordering numbered cells are opened but not
// expanded. A zero cell has no mined neighbors, so no mine is ever opened.
func (b *Board) floodFill(row, col int, revealed []Point) []Point {
	var queue deque.Deque[Point]
	queue.PushBack(Point{row, col})

	for queue.Len() != 0 {
		p := queue.PopFront()
		fromRow, toRow, fromCol, toCol := neighborhood(b.size, p.Row, p.Col)
		for r := fromRow; r <= toRow; r++ {
			for c := fromCol; c <= toCol; c++ {
				i := b.index(r, c)
				if b.cells[i].IsRevealed || b.cells[i].IsFlagged {
					continue
				}
				b.open(i)
				revealed = append(revealed, Point{r, c})
				if b.cells[i].AdjacentMines == 0 {
					queue.PushBack(Point{r, c})
				}
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"origin":   Point{row, col},
		"revealed": len(revealed),
	}).Debug("flood fill")

	return revealed
}

// Flag toggles the flag on a covered cell and reports whether it did.
func (b *Board) Flag(row, col int) bool {
	if b.state != Playing || !b.InBounds(row, col) {
		return false
	}
	c := &b.cells[b.index(row, col)]
	if c.IsRevealed {
		return false
	}
	c.IsFlagged = !c.IsFlagged
	if c.IsFlagged {
		b.flagged++
	} else {
		b.flagged--
	}
	return true
}

// CheckWin reports whether every non-mine cell has been revealed.
func (b *Board) CheckWin() bool {
	for _, c := range b.cells {
		if !c.IsMine && !c.IsRevealed {
			return false
		}
	}
	return true
}

// Covered lists the cells that are neither revealed nor flagged, row-major.
func (b *Board) Covered() []Point {
	points := make([]Point, 0, len(b.cells)-b.revealed-b.flagged)
	for i, c := range b.cells {
		if !c.IsRevealed && !c.IsFlagged {
			points = append(points, b.point(i))
		}
	}
	return points
}

// Mines lists the mined cells, row-major.
func (b *Board) Mines() []Point {
	points := make([]Point, 0, b.mineCount)
	for i, c := range b.cells {
		if c.IsMine {
			points = append(points, b.point(i))
		}
	}
	return points
}

func (b *Board) status(i int) CellStatus {
	c := b.cells[i]
	switch {
	case c.IsRevealed && c.IsMine:
		return ExplodedMine
	case c.IsRevealed:
		return CellStatus(c.AdjacentMines)
	case b.state == Lost && c.IsFlagged && c.IsMine:
		return CorrectFlag
	case b.state == Lost && c.IsFlagged:
		return WrongFlag
	case b.state == Lost && c.IsMine:
		return UnflaggedMine
	case b.state == Won && c.IsMine:
		return CorrectFlag
	case c.IsFlagged:
		return Flag
	default:
		return Unknown
	}
}

// Status is the display hint for (row, col). Mines stay hidden until the
// game is over.
func (b *Board) Status(row, col int) CellStatus {
	if !b.InBounds(row, col) {
		return Unknown
	}
	return b.status(b.index(row, col))
}

// Grid is the [Board.Status] of every cell, row-major.
func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.cells))
	for i := range b.cells {
		grid[i] = b.status(i)
	}
	return grid
}

func (b *Board) String() string {
	return b.Grid().ToString(b.size)
}
