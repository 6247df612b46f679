package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	h := NewHub()
	watcher := NewClient()
	other := NewClient()
	h.Subscribe(1, watcher)
	h.Subscribe(2, other)

	h.Broadcast(1, Event{Type: EventLike, Payload: map[string]string{"state": "added"}})

	require.Len(t, watcher, 1)
	var got Event
	require.NoError(t, json.Unmarshal(<-watcher, &got))
	assert.Equal(t, EventLike, got.Type)
	assert.Empty(t, other)
}

func TestHubSlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()
	slow := NewClient()
	h.Subscribe(1, slow)

	for i := 0; i < clientBuffer+5; i++ {
		h.Broadcast(1, Event{Type: EventTagVote, Payload: i})
	}
	assert.Len(t, slow, clientBuffer)
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()
	c := NewClient()
	h.Subscribe(3, c)
	assert.Equal(t, 1, h.Subscribers(3))

	h.Unsubscribe(3, c)
	assert.Equal(t, 0, h.Subscribers(3))
	_, open := <-c
	assert.False(t, open)

	// Unsubscribing twice is harmless.
	h.Unsubscribe(3, c)
}
