package navigation

import "multiselect/internal/domain"

// HasLimit reports whether windowing is active. A limit of zero or less means
// unlimited, and a limit equal to the item count is treated as unlimited too
// since the whole list already fits.
func HasLimit(count, limit int) bool {
	return limit > 0 && count > limit
}

// EffectiveLimit returns the number of visible rows
func EffectiveLimit(count, limit int) int {
	if HasLimit(count, limit) {
		return limit
	}
	return count
}

// Rotate returns a circularly shifted copy of items where the element at
// index i moves to index (i+n) mod len(items). Positive n shifts towards the
// end of the list, negative n towards the start.
func Rotate[T any](items []T, n int) []T {
	count := len(items)
	out := make([]T, count)
	if count == 0 {
		return out
	}
	shift := mod(n, count)
	for i, item := range items {
		out[(i+shift)%count] = item
	}
	return out
}

// SourceIndex maps a visible row back to its index in the full list
func SourceIndex(row, rotateIndex, count int) int {
	if count == 0 {
		return -1
	}
	return mod(row-rotateIndex, count)
}

// Visible returns the ordered sub-sequence of items currently on screen
func Visible(items domain.ItemList, s State, limit int) domain.ItemList {
	if !HasLimit(len(items), limit) {
		return items
	}
	return domain.ItemList(Rotate(items, s.RotateIndex)[:limit])
}

// ItemAt resolves a visible row to the underlying item
func ItemAt(items domain.ItemList, s State, limit, row int) (domain.Item, bool) {
	count := len(items)
	if row < 0 || row >= EffectiveLimit(count, limit) {
		return domain.Item{}, false
	}
	if !HasLimit(count, limit) {
		return items.At(row)
	}
	return items.At(SourceIndex(row, s.RotateIndex, count))
}

// Highlighted resolves the highlighted row to the underlying item
func Highlighted(items domain.ItemList, s State, limit int) (domain.Item, bool) {
	return ItemAt(items, s, limit, s.HighlightedIndex)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
