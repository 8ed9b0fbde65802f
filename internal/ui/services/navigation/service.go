package navigation

import "multiselect/internal/domain"

// Initial returns the starting state for a list, with the requested highlight
// clamped into the visible rows.
func Initial(initialIndex, count, limit int) State {
	return State{HighlightedIndex: initialIndex}.Clamp(count, limit)
}

// Clamp pulls the highlight back inside [0, EffectiveLimit-1]
func (s State) Clamp(count, limit int) State {
	rows := EffectiveLimit(count, limit)
	if s.HighlightedIndex >= rows {
		s.HighlightedIndex = rows - 1
	}
	if s.HighlightedIndex < 0 {
		s.HighlightedIndex = 0
	}
	return s
}

// MoveUp returns the state after one step up. At the top row a limited window
// scrolls by rotating the list instead of moving the highlight; an unlimited
// list wraps to the last row.
func (s State) MoveUp(count, limit int) State {
	if count == 0 {
		return s
	}
	if s.HighlightedIndex > 0 {
		s.HighlightedIndex--
		return s
	}
	if HasLimit(count, limit) {
		s.RotateIndex++
		return s
	}
	s.HighlightedIndex = count - 1
	return s
}

// MoveDown is the mirror image of MoveUp
func (s State) MoveDown(count, limit int) State {
	if count == 0 {
		return s
	}
	last := EffectiveLimit(count, limit) - 1
	if s.HighlightedIndex < last {
		s.HighlightedIndex++
		return s
	}
	if HasLimit(count, limit) {
		s.RotateIndex--
		return s
	}
	s.HighlightedIndex = 0
	return s
}

// Service owns the window state of one control
type Service struct {
	state State
	limit int
}

// NewService creates a navigation service for a list of count items
func NewService(initialIndex, count, limit int) *Service {
	return &Service{
		state: Initial(initialIndex, count, limit),
		limit: limit,
	}
}

// State returns the current window state
func (s *Service) State() State {
	return s.state
}

// Limit returns the configured row limit (zero or less is unlimited)
func (s *Service) Limit() int {
	return s.limit
}

// SetLimit changes the row limit and keeps the highlight inside the window
func (s *Service) SetLimit(limit, count int) {
	s.limit = limit
	s.state = s.state.Clamp(count, limit)
}

// Navigate moves the highlight one row and returns the item now highlighted.
// The boolean is false when there is nothing to highlight.
func (s *Service) Navigate(direction Direction, items domain.ItemList) (domain.Item, bool) {
	switch direction {
	case DirectionUp:
		s.state = s.state.MoveUp(len(items), s.limit)
	case DirectionDown:
		s.state = s.state.MoveDown(len(items), s.limit)
	}
	return Highlighted(items, s.state, s.limit)
}

// Current returns the highlighted item
func (s *Service) Current(items domain.ItemList) (domain.Item, bool) {
	return Highlighted(items, s.state, s.limit)
}

// Visible returns the rows currently on screen
func (s *Service) Visible(items domain.ItemList) domain.ItemList {
	return Visible(items, s.state, s.limit)
}

// Reset re-anchors the window at the first row
func (s *Service) Reset() {
	s.state = State{}
}
