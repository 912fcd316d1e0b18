package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yxrk845/Buscaminas/internal/mines"
)

func TestCellSize(t *testing.T) {
	assert.Equal(t, 75, CellSize)
	assert.Equal(t, 650, WindowHeight)
}

func TestCellAt(t *testing.T) {
	testCases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{74, 74, 0, 0, true},
		{75, 0, 0, 1, true},
		{0, 75, 1, 0, true},
		{599, 599, 7, 7, true},
		{160, 230, 3, 2, true},
		{600, 0, 0, 0, false},
		{0, 600, 0, 0, false},
		{300, 620, 0, 0, false}, // status bar
		{-1, 10, 0, 0, false},
		{10, -1, 0, 0, false},
	}
	for _, test := range testCases {
		row, col, ok := CellAt(test.x, test.y, mines.ClassicSize)
		assert.Equal(t, test.ok, ok, "(%d, %d)", test.x, test.y)
		if test.ok {
			assert.Equal(t, test.row, row, "(%d, %d)", test.x, test.y)
			assert.Equal(t, test.col, col, "(%d, %d)", test.x, test.y)
		}
	}
}

func TestCellRect(t *testing.T) {
	assert.Equal(t, image.Rect(150, 75, 225, 150), CellRect(1, 2))

	row, col, ok := CellAt(CellRect(5, 6).Min.X, CellRect(5, 6).Min.Y, mines.ClassicSize)
	assert.True(t, ok)
	assert.Equal(t, 5, row)
	assert.Equal(t, 6, col)
}

func TestButtons(t *testing.T) {
	assert.True(t, AIButton.Contains(480, 610))
	assert.True(t, AIButton.Contains(579, 639))
	assert.False(t, AIButton.Contains(580, 640))
	assert.False(t, AIButton.Contains(300, 300))

	assert.True(t, PlayButton.Contains(300, 325))
	assert.False(t, PlayButton.Contains(300, 425))
	assert.True(t, QuitButton.Contains(300, 425))

	assert.True(t, MenuButton.Contains(20, 610))
	assert.False(t, MenuButton.Rect.Overlaps(AIButton.Rect))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Buscaminas", StatusText(mines.Playing))
	assert.Equal(t, "Perdiste!", StatusText(mines.Lost))
	assert.Equal(t, "Ganaste!", StatusText(mines.Won))
}

func TestFlagTriangleInsideCell(t *testing.T) {
	rect := CellRect(2, 3)
	for _, p := range FlagTriangle(2, 3) {
		assert.True(t, p.In(rect), "%v outside %v", p, rect)
	}
}
