package events

import (
	"testing"

	"github.com/Nayrode/sealci/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesPublishedEvent(t *testing.T) {
	b := NewStateBroker()
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	b.Publish(StateEvent{ActionID: 7, State: types.ActionStateInProgress})

	event := <-sub
	assert.Equal(t, uint32(7), event.ActionID)
	assert.Equal(t, types.ActionStateInProgress, event.State)
}

func TestLateSubscriberGetsLastValue(t *testing.T) {
	b := NewStateBroker()
	b.Publish(StateEvent{ActionID: 3, State: types.ActionStateCompleted})

	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	event := <-sub
	assert.Equal(t, uint32(3), event.ActionID)
	assert.Equal(t, types.ActionStateCompleted, event.State)
}

func TestSlowSubscriberKeepsNewestEvent(t *testing.T) {
	b := NewStateBroker()
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	// Publisher must never block on a subscriber that is not draining.
	for i := 1; i <= 10; i++ {
		b.Publish(StateEvent{ActionID: uint32(i), State: types.ActionStateInProgress})
	}

	event := <-sub
	assert.Equal(t, uint32(10), event.ActionID, "only the newest event survives")
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewStateBroker()
	sub := b.Subscribe()
	require.Equal(t, 1, b.SubscriberCount())

	b.Unsubscribe(sub)
	assert.Equal(t, 0, b.SubscriberCount())

	_, open := <-sub
	assert.False(t, open)

	// Double unsubscribe is a no-op, not a panic.
	b.Unsubscribe(sub)
}
