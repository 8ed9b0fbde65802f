package selection

import "multiselect/internal/domain"

// Set is an ordered, deduplicated selection keyed by Item.Value.
// Order is insertion order, not list order. The zero value is an empty set.
type Set struct {
	items domain.ItemList
}

// NewSet builds a set from items, dropping later duplicates of a value
func NewSet(items ...domain.Item) Set {
	var s Set
	for _, item := range items {
		if !s.Contains(item.Value) {
			s.items = append(s.items, item)
		}
	}
	return s
}

// Contains reports whether an item with value is a member
func (s Set) Contains(value string) bool {
	return s.indexOf(value) >= 0
}

// Len returns the number of members
func (s Set) Len() int {
	return len(s.items)
}

// Items returns a copy of the members in insertion order
func (s Set) Items() domain.ItemList {
	return s.items.Clone()
}

// Values returns the member values in insertion order
func (s Set) Values() []string {
	return s.items.Values()
}

// Equal reports whether both sets hold the same members in the same order
func (s Set) Equal(other Set) bool {
	return s.items.Equal(other.items)
}

// With returns a new set with item appended; s is left untouched
func (s Set) With(item domain.Item) Set {
	if s.Contains(item.Value) {
		return s
	}
	items := make(domain.ItemList, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return Set{items: append(items, item)}
}

// Without returns a new set without the member carrying value
func (s Set) Without(value string) Set {
	i := s.indexOf(value)
	if i < 0 {
		return s
	}
	items := make(domain.ItemList, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	return Set{items: items}
}

func (s Set) indexOf(value string) int {
	for i, item := range s.items {
		if item.Value == value {
			return i
		}
	}
	return -1
}

// ChangeKind says which callback a toggle must raise
type ChangeKind int

const (
	ChangeSelect ChangeKind = iota
	ChangeUnselect
)

func (k ChangeKind) String() string {
	if k == ChangeUnselect {
		return "unselect"
	}
	return "select"
}

// Change is the outcome of a toggle: the event to emit and the proposed set
type Change struct {
	Kind      ChangeKind
	Item      domain.Item
	Candidate Set
}
