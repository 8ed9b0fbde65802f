package selection

import "multiselect/internal/domain"

// Ownership decides where the authoritative selection lives. It is either
// Internal, where the store keeps the set itself, or External, where the
// owner of the control supplies the set on every read.
type Ownership interface {
	// Current returns the authoritative selection for this cycle
	Current() Set
	// Adopt offers a candidate; External owners ignore it
	Adopt(candidate Set)
	// Controlled reports whether the selection is owned by the caller
	Controlled() bool
}

// Internal keeps the selection inside the store, seeded once
type Internal struct {
	set Set
}

// NewInternal creates uncontrolled ownership seeded with a default selection
func NewInternal(seed ...domain.Item) *Internal {
	return &Internal{set: NewSet(seed...)}
}

func (o *Internal) Current() Set        { return o.set }
func (o *Internal) Adopt(candidate Set) { o.set = candidate }
func (o *Internal) Controlled() bool    { return false }

// External reads the selection from its owner on every cycle
type External struct {
	read func() domain.ItemList
}

// NewExternal creates controlled ownership. The caller must feed accepted
// toggles back through read; until it does, toggles only fire callbacks.
func NewExternal(read func() domain.ItemList) *External {
	return &External{read: read}
}

func (o *External) Current() Set {
	if o.read == nil {
		return Set{}
	}
	return NewSet(o.read()...)
}

func (o *External) Adopt(Set)        {}
func (o *External) Controlled() bool { return true }

// SeedFromValues resolves values against items and returns the matching items
// in list order. Unknown values are ignored; when several items share a value
// the last one is used.
func SeedFromValues(items domain.ItemList, values []string) domain.ItemList {
	if len(values) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(values))
	for _, v := range values {
		wanted[v] = true
	}
	var seed domain.ItemList
	for i, item := range items {
		if wanted[item.Value] && items.IndexOfValue(item.Value) == i {
			seed = append(seed, item)
		}
	}
	return seed
}
