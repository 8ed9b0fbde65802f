package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
)

// Raw sequences a terminal in raw mode sends for the recognised keys
const (
	SeqArrowUp   = "\x1b[A"
	SeqArrowDown = "\x1b[B"
	SeqEnter     = "\r"
	SeqSpace     = " "
)

// Decode maps one raw input chunk to an Action. The whole chunk must match;
// prefixes and stray escape sequences decode to ActionNone.
func Decode(chunk []byte) types.Action {
	switch string(chunk) {
	case SeqArrowUp, "k":
		return types.ActionMoveUp
	case SeqArrowDown, "j":
		return types.ActionMoveDown
	case SeqSpace:
		return types.ActionToggle
	case SeqEnter:
		return types.ActionSubmit
	}
	return types.ActionNone
}

var (
	_ types.Decoder       = ByteDecoder{}
	_ types.KeyMsgDecoder = KeyMap{}
)

// ByteDecoder adapts Decode to the types.Decoder interface
type ByteDecoder struct{}

func (ByteDecoder) Decode(chunk []byte) types.Action {
	return Decode(chunk)
}

// DecodeKey maps a Bubble Tea key message to an Action using the key map
func (k KeyMap) DecodeKey(msg tea.KeyMsg) types.Action {
	switch {
	case key.Matches(msg, k.Up):
		return types.ActionMoveUp
	case key.Matches(msg, k.Down):
		return types.ActionMoveDown
	case key.Matches(msg, k.Toggle):
		return types.ActionToggle
	case key.Matches(msg, k.Submit):
		return types.ActionSubmit
	}
	return types.ActionNone
}
