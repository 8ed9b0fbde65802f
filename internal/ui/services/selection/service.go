package selection

import "multiselect/internal/domain"

// Store handles selection logic on top of an Ownership
type Store struct {
	owner Ownership
}

// NewStore creates a store; a nil owner means an empty uncontrolled selection
func NewStore(owner Ownership) *Store {
	if owner == nil {
		owner = NewInternal()
	}
	return &Store{owner: owner}
}

// Toggle flips membership of item by value. Members are removed, anything
// else is appended. The candidate is offered to the owner, which persists it
// only in uncontrolled mode.
func (s *Store) Toggle(item domain.Item) Change {
	current := s.owner.Current()

	change := Change{Item: item}
	if current.Contains(item.Value) {
		change.Kind = ChangeUnselect
		change.Candidate = current.Without(item.Value)
	} else {
		change.Kind = ChangeSelect
		change.Candidate = current.With(item)
	}

	s.owner.Adopt(change.Candidate)
	return change
}

// Current returns the authoritative selection
func (s *Store) Current() Set {
	return s.owner.Current()
}

// IsSelected checks if an item is selected
func (s *Store) IsSelected(item domain.Item) bool {
	return s.owner.Current().Contains(item.Value)
}

// Controlled reports whether the caller owns the selection
func (s *Store) Controlled() bool {
	return s.owner.Controlled()
}
