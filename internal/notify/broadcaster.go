// Package notify owns the process-wide SSE subscriber set. Delivery is
// best-effort: a subscriber that cannot keep up loses events rather
// than blocking the write path.
package notify

import "sync"

// BroadcasterInterface is the notification surface the service uses
// after a successful write.
type BroadcasterInterface interface {
	Broadcast(updatedAt string)
}

// Broadcaster fans "document updated" events out to SSE clients.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

// Ensure Broadcaster implements BroadcasterInterface
var _ BroadcasterInterface = (*Broadcaster)(nil)

// NewBroadcaster creates an empty broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[chan string]struct{})}
}

// Subscribe registers a listener and returns its event channel plus an
// unsubscribe function. The channel is buffered so one slow read does
// not stall a broadcast.
func (b *Broadcaster) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 8)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		if _, ok := b.clients[ch]; ok {
			delete(b.clients, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, unsubscribe
}

// Broadcast delivers the new updatedAt token to every subscriber,
// dropping it for any whose buffer is full.
func (b *Broadcaster) Broadcast(updatedAt string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.clients {
		select {
		case ch <- updatedAt:
		default:
		}
	}
}

// Len returns the current subscriber count.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}
