package controller

import (
	"github.com/charmbracelet/log"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/input/types"
)

// Callbacks are invoked synchronously, after the state they describe is in place
type Callbacks struct {
	OnHighlight func(domain.Item)
	OnSelect    func(domain.Item)
	OnUnselect  func(domain.Item)
	OnSubmit    func(domain.ItemList)
}

type options struct {
	initialIndex   int
	focused        bool
	limit          int
	defaultSeed    domain.ItemList
	selectedValues []string
	controlled     func() domain.ItemList
	callbacks      Callbacks
	bus            eventbus.EventBus
	decoder        types.Decoder
	logger         *log.Logger
}

// Option configures a Controller
type Option func(*options)

// WithInitialIndex sets the row highlighted first (default 0)
func WithInitialIndex(index int) Option {
	return func(o *options) { o.initialIndex = index }
}

// WithFocus sets whether the control reacts to input (default true)
func WithFocus(focused bool) Option {
	return func(o *options) { o.focused = focused }
}

// WithLimit caps the number of visible rows. Zero means unlimited.
func WithLimit(limit int) Option {
	return func(o *options) { o.limit = limit }
}

// WithDefaultSelection seeds an uncontrolled selection once
func WithDefaultSelection(items ...domain.Item) Option {
	return func(o *options) { o.defaultSeed = append(o.defaultSeed, items...) }
}

// WithSelectedValues seeds an uncontrolled selection by value. Values are
// resolved against the initial item list; unknown values are dropped.
func WithSelectedValues(values ...string) Option {
	return func(o *options) { o.selectedValues = append(o.selectedValues, values...) }
}

// WithControlledSelection hands ownership of the selection to the caller.
// read is consulted on every cycle and overrides any default seed.
func WithControlledSelection(read func() domain.ItemList) Option {
	return func(o *options) { o.controlled = read }
}

// WithCallbacks sets the four notification callbacks
func WithCallbacks(cb Callbacks) Option {
	return func(o *options) { o.callbacks = cb }
}

// OnHighlight sets the highlight callback
func OnHighlight(fn func(domain.Item)) Option {
	return func(o *options) { o.callbacks.OnHighlight = fn }
}

// OnSelect sets the select callback
func OnSelect(fn func(domain.Item)) Option {
	return func(o *options) { o.callbacks.OnSelect = fn }
}

// OnUnselect sets the unselect callback
func OnUnselect(fn func(domain.Item)) Option {
	return func(o *options) { o.callbacks.OnUnselect = fn }
}

// OnSubmit sets the submit callback
func OnSubmit(fn func(domain.ItemList)) Option {
	return func(o *options) { o.callbacks.OnSubmit = fn }
}

// WithBus mirrors every callback onto an event bus
func WithBus(bus eventbus.EventBus) Option {
	return func(o *options) { o.bus = bus }
}

// WithDecoder replaces the raw chunk decoder
func WithDecoder(d types.Decoder) Option {
	return func(o *options) { o.decoder = d }
}

// WithLogger sets the logger used for debug tracing
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}
