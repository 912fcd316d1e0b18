package mines

import "fmt"

type InvalidParamsError struct {
	Size, MineCount int
}

// [InvalidParamsError] implements [error]
func (e InvalidParamsError) Error() string {
	switch {
	case e.Size <= 0:
		return fmt.Sprintf("cannot create a board of size %d", e.Size)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	default:
		return fmt.Sprintf(
			"not enough space for %d mines on a %dx%d board",
			e.MineCount, e.Size, e.Size,
		)
	}
}

type InvalidLayoutError struct {
	Point  Point
	Reason string
}

func (e InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid mine at %s: %s", e.Point, e.Reason)
}
