package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown       CellStatus = -2
	Flag          CellStatus = -1
	CorrectFlag   CellStatus = 64 // post-game-over
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
	// 0-8 for open with given number of mined neighbors
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "-"
	case Flag:
		return "F"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	case CorrectFlag:
		return "+"
	case ExplodedMine:
		return "X"
	case WrongFlag:
		return "x"
	case UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

// Open reports whether s describes a revealed non-mine cell.
func (s CellStatus) Open() bool {
	return 0 <= s && s <= 8
}

type Grid []CellStatus

func (g Grid) ToString(width int) string {
	var b strings.Builder
	fmt.Fprint(&b, "  ")
	for x := range width {
		fmt.Fprintf(&b, " %d", x)
	}
	fmt.Fprint(&b, "\n")
	for y := range len(g) / width {
		fmt.Fprintf(&b, "%d ", y)
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, " "+g[i].String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
