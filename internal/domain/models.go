package domain

import (
	"github.com/google/go-cmp/cmp"
)

// Item represents a single selectable row
type Item struct {
	Label string
	Value string // selection identity
	Key   string // display identity, optional
}

// ID returns the display identity of the item. It falls back to Value when
// no Key was given, so two items may share a display key only if they also
// share a value.
func (i Item) ID() string {
	if i.Key != "" {
		return i.Key
	}
	return i.Value
}

// ItemList is the ordered list of items supplied by the owner of a control
type ItemList []Item

// Len returns the number of items
func (l ItemList) Len() int {
	return len(l)
}

// At returns the item at index and whether the index was in range
func (l ItemList) At(index int) (Item, bool) {
	if index < 0 || index >= len(l) {
		return Item{}, false
	}
	return l[index], true
}

// IndexOfValue returns the index of the last item carrying value, or -1.
// When a list violates the unique-value contract the last item wins.
func (l ItemList) IndexOfValue(value string) int {
	found := -1
	for i, item := range l {
		if item.Value == value {
			found = i
		}
	}
	return found
}

// Equal reports whether two lists are structurally equal, element for element
func (l ItemList) Equal(other ItemList) bool {
	return ItemListsEqual(l, other)
}

// ItemListsEqual is the structural equality check used to detect that the owner
// replaced the item list. A nil list and an empty list are considered equal.
// The lists are compared as plain slices so cmp does not call back into
// ItemList.Equal.
func ItemListsEqual(a, b ItemList) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return cmp.Equal([]Item(a), []Item(b))
}

// Clone returns a copy that does not share backing storage with l
func (l ItemList) Clone() ItemList {
	if l == nil {
		return nil
	}
	out := make(ItemList, len(l))
	copy(out, l)
	return out
}

// Values returns the selection identities of the items, in order
func (l ItemList) Values() []string {
	values := make([]string, 0, len(l))
	for _, item := range l {
		values = append(values, item.Value)
	}
	return values
}

// Row is what a presentation adapter needs to draw one visible row
type Row struct {
	Item        Item
	Key         string // display identity, see Item.ID
	Position    int    // row on screen, 0 is the top of the window
	Highlighted bool
	Selected    bool
}
