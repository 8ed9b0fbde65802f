package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemID(t *testing.T) {
	t.Run("FallsBackToValue", func(t *testing.T) {
		item := Item{Label: "First", Value: "first"}
		assert.Equal(t, "first", item.ID())
	})

	t.Run("PrefersKey", func(t *testing.T) {
		item := Item{Label: "First", Value: "first", Key: "row-1"}
		assert.Equal(t, "row-1", item.ID())
		assert.Equal(t, "first", item.Value)
	})
}

func TestItemListsEqual(t *testing.T) {
	a := ItemList{{Label: "First", Value: "first"}, {Label: "Second", Value: "second"}}

	assert.True(t, ItemListsEqual(a, a.Clone()))
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, ItemListsEqual(nil, a))
	assert.False(t, ItemList{}.Equal(a))
	assert.True(t, ItemListsEqual(nil, ItemList{}))
	assert.False(t, ItemListsEqual(a, a[:1]))

	relabeled := a.Clone()
	relabeled[1].Label = "Other"
	assert.False(t, a.Equal(relabeled))

	reordered := ItemList{a[1], a[0]}
	assert.False(t, a.Equal(reordered))
}

func TestItemListLookup(t *testing.T) {
	list := ItemList{
		{Label: "A", Value: "dup"},
		{Label: "B", Value: "b"},
		{Label: "C", Value: "dup"},
	}

	item, ok := list.At(1)
	assert.True(t, ok)
	assert.Equal(t, "B", item.Label)

	_, ok = list.At(3)
	assert.False(t, ok)
	_, ok = list.At(-1)
	assert.False(t, ok)

	// last item with a duplicated value wins
	assert.Equal(t, 2, list.IndexOfValue("dup"))
	assert.Equal(t, -1, list.IndexOfValue("missing"))
	assert.Equal(t, []string{"dup", "b", "dup"}, list.Values())
}
