package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventHighlighted   EventType = "Highlighted"
	EventSelected      EventType = "Selected"
	EventUnselected    EventType = "Unselected"
	EventSubmitted     EventType = "Submitted"
	EventItemsReplaced EventType = "ItemsReplaced"
	EventFocusChanged  EventType = "FocusChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// HighlightedEvent is emitted after the cursor moved onto an item
type HighlightedEvent struct {
	Item Item
}

func (e HighlightedEvent) Type() EventType { return EventHighlighted }

// SelectedEvent is emitted when an item is toggled into the selection
type SelectedEvent struct {
	Item Item
}

func (e SelectedEvent) Type() EventType { return EventSelected }

// UnselectedEvent is emitted when an item is toggled out of the selection
type UnselectedEvent struct {
	Item Item
}

func (e UnselectedEvent) Type() EventType { return EventUnselected }

// SubmittedEvent carries the selection at the moment the user submitted
type SubmittedEvent struct {
	Items ItemList
}

func (e SubmittedEvent) Type() EventType { return EventSubmitted }

// ItemsReplacedEvent is emitted when the owner supplied a different item list
// and navigation was re-anchored to the first row
type ItemsReplacedEvent struct {
	Count int
}

func (e ItemsReplacedEvent) Type() EventType { return EventItemsReplaced }

// FocusChangedEvent is emitted when a control gains or loses focus
type FocusChangedEvent struct {
	Focused bool
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }
