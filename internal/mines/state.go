package mines

type GameState int

const (
	Playing GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s GameState) Over() bool {
	return s != Playing
}
