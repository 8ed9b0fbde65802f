package types

import tea "github.com/charmbracelet/bubbletea"

// Decoder maps a raw input chunk to an Action. Implementations must be pure:
// the same chunk always yields the same Action.
type Decoder interface {
	Decode(chunk []byte) Action
}

// KeyMsgDecoder maps a Bubble Tea key message to an Action
type KeyMsgDecoder interface {
	DecodeKey(msg tea.KeyMsg) Action
}
