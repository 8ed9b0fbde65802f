package ui

import (
	"multiselect/internal/domain"
)

// FocusMsg moves input focus to or away from the control
type FocusMsg struct {
	Focused bool
}

// SetItemsMsg replaces the item list. A structurally equal list keeps the
// current window.
type SetItemsMsg struct {
	Items domain.ItemList
}

// StatusMsg sets the line shown below the list
type StatusMsg string
