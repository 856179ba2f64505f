package event

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Handler receives events published on a Bus
type Handler func(Event)

type entry struct {
	id uint64
	h  Handler
}

// Bus fans host notifications out to subscribers in subscription order
// There is no package-level listener list: each subscriber holds the handle it must cancel
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[EventType][]entry
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[EventType][]entry)}
}

// Subscription is the handle returned by Subscribe, Cancel removes exactly that handler
type Subscription struct {
	bus       *Bus
	eventType EventType
	id        uint64
	cancelled atomic.Bool
}

// Subscribe registers h for events of type et
func (b *Bus) Subscribe(et EventType, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[et] = append(b.subs[et], entry{id: id, h: h})
	return &Subscription{bus: b, eventType: et, id: id}
}

// OnResize subscribes to viewport resizes
func (b *Bus) OnResize(fn func(width, height int)) *Subscription {
	return b.Subscribe(EventResize, func(ev Event) { fn(ev.Width, ev.Height) })
}

// OnTheme subscribes to palette switches
func (b *Bus) OnTheme(fn func()) *Subscription {
	return b.Subscribe(EventTheme, func(Event) { fn() })
}

// OnPointer subscribes to pointer moves in normalized device coordinates
func (b *Bus) OnPointer(fn func(x, y float64)) *Subscription {
	return b.Subscribe(EventPointer, func(ev Event) { fn(ev.X, ev.Y) })
}

// Publish delivers ev synchronously to every subscriber of its type on the caller's goroutine,
// earliest subscription first
// Handlers are snapshotted first so a handler may cancel its own subscription
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	set := b.subs[ev.Type]
	handlers := make([]Handler, len(set))
	for i, e := range set {
		handlers[i] = e.h
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

// PublishResize is shorthand for a resize event
func (b *Bus) PublishResize(width, height int) {
	b.Publish(Event{Type: EventResize, Width: width, Height: height})
}

// PublishTheme is shorthand for a theme event
func (b *Bus) PublishTheme() {
	b.Publish(Event{Type: EventTheme})
}

// PublishPointer is shorthand for a pointer event, x and y in [-1,1] with y up
func (b *Bus) PublishPointer(x, y float64) {
	b.Publish(Event{Type: EventPointer, X: x, Y: y})
}

// Len returns the number of live subscriptions for et
func (b *Bus) Len(et EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[et])
}

// Total returns the number of live subscriptions across all types
func (b *Bus) Total() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, set := range b.subs {
		n += len(set)
	}
	return n
}

// Cancel removes the handler, safe to call more than once
func (s *Subscription) Cancel() {
	if s == nil || !s.cancelled.CompareAndSwap(false, true) {
		return
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	set := slices.DeleteFunc(s.bus.subs[s.eventType], func(e entry) bool { return e.id == s.id })
	if len(set) == 0 {
		delete(s.bus.subs, s.eventType)
		return
	}
	s.bus.subs[s.eventType] = set
}

// Active reports whether the subscription has not been cancelled
func (s *Subscription) Active() bool {
	return s != nil && !s.cancelled.Load()
}
