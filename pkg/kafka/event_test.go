package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]any{"user_id": "u1", "item_count": 3}

	ev, err := NewEvent("store.cart.updated", "u1", "cart", "storefront", payload)

	require.NoError(t, err)
	assert.Equal(t, "store.cart.updated", ev.EventType)
	assert.Equal(t, "u1", ev.AggregateID)
	assert.Equal(t, "cart", ev.AggregateType)
	assert.Equal(t, "storefront", ev.Source)
	assert.False(t, ev.Timestamp.IsZero())

	_, err = uuid.Parse(ev.EventID)
	assert.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(ev.Data, &data))
	assert.Equal(t, "u1", data["user_id"])
}

func TestNewEvent_UnmarshalablePayload(t *testing.T) {
	_, err := NewEvent("x", "1", "cart", "storefront", func() {})
	assert.Error(t, err)
}

func TestEvent_Marshal(t *testing.T) {
	ev, err := NewEvent("store.cart.cleared", "u1", "cart", "storefront", map[string]string{"user_id": "u1"})
	require.NoError(t, err)

	data, err := ev.Marshal()
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ev.EventID, decoded.EventID)
	assert.Equal(t, ev.EventType, decoded.EventType)
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a, err := NewEvent("x", "1", "cart", "storefront", nil)
	require.NoError(t, err)
	b, err := NewEvent("x", "1", "cart", "storefront", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.EventID, b.EventID)
}
