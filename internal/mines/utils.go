package mines

import "fmt"

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// neighborhood returns the clamped 3x3 window around (row, col) on an n×n
// grid. The window includes the center cell.
func neighborhood(n, row, col int) (fromRow, toRow, fromCol, toCol int) {
	fromRow, toRow = max(0, row-1), min(row+1, n-1)
	fromCol, toCol = max(0, col-1), min(col+1, n-1)
	return
}
