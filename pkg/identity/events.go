package identity

import (
	"context"
	"sync"
)

// EventType classifies an auth state change.
type EventType string

const (
	EventSignedIn       EventType = "signed_in"
	EventSignedOut      EventType = "signed_out"
	EventTokenRefreshed EventType = "token_refreshed"
)

// Event describes a single auth state change. User is nil for sign-out.
type Event struct {
	Type EventType
	User *User
}

// eventBus fans auth events out to subscribers. Delivery is non-blocking:
// a subscriber whose buffer is full misses the event rather than stalling
// the publisher, which runs on the request path.
type eventBus struct {
	mu     sync.RWMutex
	subs   map[chan Event]struct{}
	closed bool
}

const eventBufferSize = 16

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[chan Event]struct{})}
}

// subscribe registers a new subscriber channel. The subscription is removed
// and the channel closed when ctx is cancelled or the bus closes.
func (b *eventBus) subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, eventBufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			b.unsubscribe(ch)
		}()
	}

	return ch
}

func (b *eventBus) unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

func (b *eventBus) publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

func (b *eventBus) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
	}
	clear(b.subs)
}
