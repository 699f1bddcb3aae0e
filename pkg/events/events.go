package events

import (
	"sync"

	"github.com/Nayrode/sealci/pkg/types"
)

// StateEvent is an action lifecycle transition observed inside one agent
// process. It never crosses the wire.
type StateEvent struct {
	ActionID uint32
	State    types.ActionState
}

// Subscriber is a channel that receives state events
type Subscriber chan StateEvent

// StateBroker distributes action state transitions to local listeners with
// last-value semantics: a new subscriber immediately receives the most
// recent event, and a slow subscriber is overwritten rather than blocking
// the publisher.
type StateBroker struct {
	mu          sync.Mutex
	subscribers map[Subscriber]bool
	last        *StateEvent
}

// NewStateBroker creates a new broker with no subscribers.
func NewStateBroker() *StateBroker {
	return &StateBroker{
		subscribers: make(map[Subscriber]bool),
	}
}

// Subscribe creates a new subscription. If an event was already published,
// it is delivered immediately.
func (b *StateBroker) Subscribe() Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(Subscriber, 1)
	if b.last != nil {
		sub <- *b.last
	}
	b.subscribers[sub] = true
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *StateBroker) Unsubscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[sub] {
		delete(b.subscribers, sub)
		close(sub)
	}
}

// Publish delivers the event to every subscriber without ever blocking: a
// subscriber that has not drained its previous event keeps only the newest.
func (b *StateBroker) Publish(event StateEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = &event
	for sub := range b.subscribers {
		select {
		case sub <- event:
		default:
			// Stale value still queued; replace it with the newest.
			select {
			case <-sub:
			default:
			}
			select {
			case sub <- event:
			default:
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (b *StateBroker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
