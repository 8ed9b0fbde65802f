package controller

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/input"
	"multiselect/internal/ui/input/types"
	"multiselect/internal/ui/services/navigation"
	"multiselect/internal/ui/services/selection"
)

// KeySource delivers raw input chunks to a subscriber, one at a time
type KeySource interface {
	Subscribe(handler func(chunk []byte)) (unsubscribe func())
}

// RawMode switches the terminal in and out of raw input mode
type RawMode interface {
	SetRawMode(enabled bool) error
}

// Controller composes key decoding, window navigation and selection into one
// multi-select control. It is not safe for concurrent use: every input chunk
// is processed to completion before the next one is accepted.
type Controller struct {
	items     domain.ItemList
	nav       *navigation.Service
	selection *selection.Store
	callbacks Callbacks
	focused   bool

	bus     eventbus.EventBus
	decoder types.Decoder
	logger  *log.Logger
}

// New creates a controller over items
func New(items domain.ItemList, opts ...Option) *Controller {
	o := options{focused: true}
	for _, opt := range opts {
		opt(&o)
	}

	var owner selection.Ownership
	if o.controlled != nil {
		owner = selection.NewExternal(o.controlled)
	} else {
		seed := append(domain.ItemList{}, o.defaultSeed...)
		seed = append(seed, selection.SeedFromValues(items, o.selectedValues)...)
		owner = selection.NewInternal(seed...)
	}

	c := &Controller{
		items:     items.Clone(),
		nav:       navigation.NewService(o.initialIndex, len(items), o.limit),
		selection: selection.NewStore(owner),
		callbacks: o.callbacks,
		focused:   o.focused,
		bus:       o.bus,
		decoder:   o.decoder,
		logger:    o.logger,
	}
	if c.bus == nil {
		c.bus = eventbus.NullBus{}
	}
	if c.decoder == nil {
		c.decoder = input.ByteDecoder{}
	}
	if c.logger == nil {
		c.logger = log.With("component", "multiselect")
	}
	return c
}

// Decode maps a raw chunk to an action with this controller's decoder,
// without dispatching it
func (c *Controller) Decode(chunk []byte) types.Action {
	return c.decoder.Decode(chunk)
}

// HandleInput decodes one raw chunk and dispatches the resulting action
func (c *Controller) HandleInput(chunk []byte) types.Action {
	action := c.decoder.Decode(chunk)
	c.Dispatch(action)
	return action
}

// Dispatch applies one action. It reports whether the action was handled;
// unfocused controls and empty lists ignore navigation and toggles.
func (c *Controller) Dispatch(action types.Action) bool {
	if !c.focused {
		return false
	}

	switch action {
	case types.ActionMoveUp:
		return c.move(navigation.DirectionUp)
	case types.ActionMoveDown:
		return c.move(navigation.DirectionDown)
	case types.ActionToggle:
		return c.toggle()
	case types.ActionSubmit:
		c.submit()
		return true
	}
	return false
}

func (c *Controller) move(direction navigation.Direction) bool {
	if len(c.items) == 0 {
		return false
	}
	old := c.nav.State()
	item, ok := c.nav.Navigate(direction, c.items)
	c.logger.Debug("navigate", "direction", direction, "from", old, "to", c.nav.State())
	if !ok {
		return false
	}

	if c.callbacks.OnHighlight != nil {
		c.callbacks.OnHighlight(item)
	}
	c.bus.Publish(domain.HighlightedEvent{Item: item})
	return true
}

func (c *Controller) toggle() bool {
	item, ok := c.nav.Current(c.items)
	if !ok {
		return false
	}

	change := c.selection.Toggle(item)
	c.logger.Debug("toggle", "value", item.Value, "change", change.Kind, "controlled", c.selection.Controlled())

	switch change.Kind {
	case selection.ChangeSelect:
		if c.callbacks.OnSelect != nil {
			c.callbacks.OnSelect(item)
		}
		c.bus.Publish(domain.SelectedEvent{Item: item})
	case selection.ChangeUnselect:
		if c.callbacks.OnUnselect != nil {
			c.callbacks.OnUnselect(item)
		}
		c.bus.Publish(domain.UnselectedEvent{Item: item})
	}
	return true
}

func (c *Controller) submit() {
	selected := c.selection.Current().Items()
	c.logger.Debug("submit", "count", len(selected))

	if c.callbacks.OnSubmit != nil {
		c.callbacks.OnSubmit(selected.Clone())
	}
	c.bus.Publish(domain.SubmittedEvent{Items: selected})
}

// SetItems supplies a new item list. When it differs structurally from the
// current one, navigation is re-anchored at the first row and true is returned.
func (c *Controller) SetItems(items domain.ItemList) bool {
	if domain.ItemListsEqual(c.items, items) {
		return false
	}
	c.items = items.Clone()
	c.nav.Reset()
	c.logger.Debug("items replaced", "count", len(items))
	c.bus.Publish(domain.ItemsReplacedEvent{Count: len(items)})
	return true
}

// SetLimit changes the visible row cap. Zero means unlimited.
func (c *Controller) SetLimit(limit int) {
	c.nav.SetLimit(limit, len(c.items))
}

// SetFocus routes input to this control or away from it. The change applies
// to the next processed chunk.
func (c *Controller) SetFocus(focused bool) {
	if c.focused == focused {
		return
	}
	c.focused = focused
	c.bus.Publish(domain.FocusChangedEvent{Focused: focused})
}

// Focused reports whether the control reacts to input
func (c *Controller) Focused() bool {
	return c.focused
}

// Items returns the current item list
func (c *Controller) Items() domain.ItemList {
	return c.items.Clone()
}

// State returns the window state
func (c *Controller) State() navigation.State {
	return c.nav.State()
}

// Highlighted returns the item under the highlight
func (c *Controller) Highlighted() (domain.Item, bool) {
	return c.nav.Current(c.items)
}

// Selection returns the authoritative selection in insertion order
func (c *Controller) Selection() domain.ItemList {
	return c.selection.Current().Items()
}

// Controlled reports whether the caller owns the selection
func (c *Controller) Controlled() bool {
	return c.selection.Controlled()
}

// Rows returns the visible window with highlight and selection membership
// resolved, ready for a presentation adapter.
func (c *Controller) Rows() []domain.Row {
	visible := c.nav.Visible(c.items)
	current := c.selection.Current()
	highlighted := c.nav.State().HighlightedIndex

	rows := make([]domain.Row, 0, len(visible))
	for i, item := range visible {
		rows = append(rows, domain.Row{
			Item:        item,
			Key:         item.ID(),
			Position:    i,
			Highlighted: i == highlighted,
			Selected:    current.Contains(item.Value),
		})
	}
	return rows
}

// Attach enables raw mode and subscribes to source for as long as the control
// is active. The returned release function undoes both and is safe to call more
// than once; callers should defer it so abnormal teardown restores the terminal.
func (c *Controller) Attach(source KeySource, raw RawMode) (func(), error) {
	if raw != nil {
		if err := raw.SetRawMode(true); err != nil {
			return func() {}, fmt.Errorf("failed to enable raw mode: %w", err)
		}
	}

	unsubscribe := func() {}
	if source != nil {
		unsubscribe = source.Subscribe(func(chunk []byte) {
			c.HandleInput(chunk)
		})
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			if raw != nil {
				if err := raw.SetRawMode(false); err != nil {
					c.logger.Warn("could not disable raw mode", "err", err)
				}
			}
		})
	}, nil
}
