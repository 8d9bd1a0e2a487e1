package rabbitmq

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent("post.created", 12)

	_, err := uuid.Parse(event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "post.created", event.Type)
	assert.Equal(t, uint(12), event.EntityID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestDecode_RejectsUntypedEvents(t *testing.T) {
	_, err := Decode([]byte(`{"id":"x","entity_id":3}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestHandleDelivery(t *testing.T) {
	body, err := Encode(NewEvent("tag.deleted", 4))
	require.NoError(t, err)

	var got Event
	err = handleDelivery(body, func(e Event) error {
		got = e
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "tag.deleted", got.Type)
	assert.Equal(t, uint(4), got.EntityID)

	failing := errors.New("downstream unavailable")
	err = handleDelivery(body, func(Event) error { return failing })
	assert.ErrorIs(t, err, failing)
	assert.False(t, isDecodeError(err))

	err = handleDelivery([]byte("{"), func(Event) error { return nil })
	assert.True(t, isDecodeError(err))
}
