package notify_test

import (
	"testing"

	"team-schedule-backend/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := notify.NewBroadcaster()

	ch1, unsub1 := b.Subscribe()
	ch2, unsub2 := b.Subscribe()
	defer unsub1()
	defer unsub2()

	b.Broadcast("2024-06-01T12:00:00Z")

	assert.Equal(t, "2024-06-01T12:00:00Z", <-ch1)
	assert.Equal(t, "2024-06-01T12:00:00Z", <-ch2)
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := notify.NewBroadcaster()

	ch, unsubscribe := b.Subscribe()
	assert.Equal(t, 1, b.Len())

	unsubscribe()
	assert.Equal(t, 0, b.Len())

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestBroadcaster_SlowSubscriberDropsEvents(t *testing.T) {
	b := notify.NewBroadcaster()

	ch, unsubscribe := b.Subscribe()
	defer unsubscribe()

	// Fill the buffer and then some; extra events are dropped, not
	// blocked on.
	for i := 0; i < 20; i++ {
		b.Broadcast("tick")
	}

	assert.Len(t, ch, 8)
}

func TestBroadcaster_BroadcastWithNoSubscribers(t *testing.T) {
	b := notify.NewBroadcaster()
	b.Broadcast("2024-06-01T12:00:00Z")
	assert.Equal(t, 0, b.Len())
}
