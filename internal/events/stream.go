// Package events provides priority-ordered, resettable event streams.
//
// A Stream dispatches synchronously to an explicit subscriber list sorted by
// priority, replacing implicit global handler-ordering conventions: higher
// priorities run first, ties run in subscription order. Streams nest via
// Forward, which copies every event from a parent stream into a child stream
// that can be Reset independently of the parent.
package events

import "sort"

// Well-known priorities. Forwarding and toolkit-side bookkeeping run at
// PriorityForward so that navigation handlers at PriorityNavigation always
// observe an event last.
const (
	PriorityForward    = 100
	PriorityNavigation = -1
)

// KeyAction discriminates press and release edges of a keystroke.
type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRelease
)

// KeyEvent is a keyboard event. Key uses Bubble Tea's KeyMsg.String()
// vocabulary ("right", "enter", "home", "q", "ctrl+c", ...).
type KeyEvent struct {
	Key    string
	Action KeyAction
}

// Event is any value published on a Stream.
type Event any

// Handler receives published events.
type Handler func(Event)

// Subscription identifies a handler for Unsubscribe.
type Subscription struct {
	id int
}

type subscriber struct {
	id       int
	priority int
	fn       Handler
}

// Stream is an ordered fan-out of events to subscribers. All methods must be
// called from a single goroutine (the UI event loop).
type Stream struct {
	subs   []subscriber
	nextID int
}

// NewStream returns an empty stream.
func NewStream() *Stream {
	return &Stream{}
}

// Subscribe registers fn at the given priority and returns a token for
// Unsubscribe. Higher priorities are dispatched first; equal priorities are
// dispatched in subscription order.
func (s *Stream) Subscribe(priority int, fn Handler) Subscription {
	s.nextID++
	sub := subscriber{id: s.nextID, priority: priority, fn: fn}
	s.subs = append(s.subs, sub)
	sort.SliceStable(s.subs, func(i, j int) bool {
		return s.subs[i].priority > s.subs[j].priority
	})
	return Subscription{id: sub.id}
}

// Unsubscribe removes the handler identified by sub. Unknown tokens are a
// no-op.
func (s *Stream) Unsubscribe(sub Subscription) {
	for i := range s.subs {
		if s.subs[i].id == sub.id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Publish dispatches ev to every subscriber in priority order. Handlers that
// subscribe or unsubscribe during dispatch take effect on the next Publish.
func (s *Stream) Publish(ev Event) {
	snapshot := make([]subscriber, len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		sub.fn(ev)
	}
}

// Reset removes all subscribers.
func (s *Stream) Reset() {
	s.subs = nil
}

// Len returns the number of subscribers.
func (s *Stream) Len() int {
	return len(s.subs)
}

// Forward subscribes on parent at the given priority and republishes every
// event into child. The returned token unsubscribes from parent; resetting
// child does not affect the forwarder.
func Forward(parent, child *Stream, priority int) Subscription {
	return parent.Subscribe(priority, func(ev Event) {
		child.Publish(ev)
	})
}
