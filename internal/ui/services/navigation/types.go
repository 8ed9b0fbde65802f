package navigation

// State holds the window bookkeeping of one control.
// RotateIndex is only meaningful while a limit is active; it is applied
// modulo the item count and may be negative.
type State struct {
	RotateIndex      int
	HighlightedIndex int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

