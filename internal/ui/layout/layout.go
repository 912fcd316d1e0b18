// Package layout holds the window geometry shared by the graphical front
// end: cell size, pixel to cell translation and button hit tests.
package layout

import (
	"image"

	"github.com/Yxrk845/Buscaminas/internal/mines"
)

const (
	WindowSize      = 600
	StatusBarHeight = 50
	WindowHeight    = WindowSize + StatusBarHeight
	CellSize        = WindowSize / mines.ClassicSize
)

// CellAt translates a pixel position into grid coordinates on an n×n board
// drawn with [CellSize] cells. ok is false outside the grid.
func CellAt(x, y, n int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/CellSize, x/CellSize
	if row >= n || col >= n {
		return 0, 0, false
	}
	return row, col, true
}

// CellRect is the pixel rectangle of (row, col).
func CellRect(row, col int) image.Rectangle {
	return image.Rect(
		col*CellSize, row*CellSize,
		(col+1)*CellSize, (row+1)*CellSize,
	)
}

type Button struct {
	Rect  image.Rectangle
	Label string
}

func NewButton(x, y, width, height int, label string) Button {
	return Button{Rect: image.Rect(x, y, x+width, y+height), Label: label}
}

func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

var (
	AIButton   = NewButton(WindowSize-120, WindowSize+10, 100, 30, "Usar IA")
	MenuButton = NewButton(20, WindowSize+10, 100, 30, "Menu")
	PlayButton = NewButton(WindowSize/2-100, 300, 200, 50, "Jugar")
	QuitButton = NewButton(WindowSize/2-100, 400, 200, 50, "Salir")
)

const Title = "Buscaminas"

func StatusText(state mines.GameState) string {
	switch state {
	case mines.Lost:
		return "Perdiste!"
	case mines.Won:
		return "Ganaste!"
	default:
		return Title
	}
}

// FlagTriangle returns the corners of the flag drawn on a covered cell.
func FlagTriangle(row, col int) [3]image.Point {
	x, y := col*CellSize, row*CellSize
	return [3]image.Point{
		{x + 10, y + 10},
		{x + CellSize - 10, y + CellSize/2},
		{x + 10, y + CellSize - 10},
	}
}
