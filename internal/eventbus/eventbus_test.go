package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
)

func TestPublishIsOrderedAndSynchronous(t *testing.T) {
	b := New()

	var got []string
	b.Subscribe(EventSelected, func(e DomainEvent) {
		got = append(got, "selected:"+e.(SelectedEvent).Item.Value)
	})
	b.Subscribe(EventUnselected, func(e DomainEvent) {
		got = append(got, "unselected:"+e.(UnselectedEvent).Item.Value)
	})

	b.Publish(SelectedEvent{Item: domain.Item{Value: "a"}})
	b.Publish(UnselectedEvent{Item: domain.Item{Value: "a"}})
	b.Publish(SelectedEvent{Item: domain.Item{Value: "b"}})

	assert.Equal(t, []string{"selected:a", "unselected:a", "selected:b"}, got)
}

func TestUnsubscribe(t *testing.T) {
	b := New()

	calls := 0
	unsubscribe := b.Subscribe(EventSubmitted, func(DomainEvent) { calls++ })
	other := 0
	b.Subscribe(EventSubmitted, func(DomainEvent) { other++ })

	b.Publish(SubmittedEvent{})
	unsubscribe()
	unsubscribe() // second call is a no-op
	b.Publish(SubmittedEvent{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()

	reached := false
	b.Subscribe(EventFocusChanged, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventFocusChanged, func(DomainEvent) { reached = true })

	require.NotPanics(t, func() {
		b.Publish(FocusChangedEvent{Focused: true})
	})
	assert.True(t, reached, "later handlers still run after a panic")
}

func TestNullBus(t *testing.T) {
	var b EventBus = NullBus{}
	unsubscribe := b.Subscribe(EventSelected, func(DomainEvent) { t.Fatal("should not be called") })
	b.Publish(SelectedEvent{})
	unsubscribe()
}
