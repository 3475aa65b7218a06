package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "alerts:events:tenant_metro", ChannelFor("tenant_metro"))
	assert.Equal(t, "alerts:events:tenant_harbor", ChannelFor("tenant_harbor"))
}

func TestEvent_JSONOmitsPartition(t *testing.T) {
	event := Event{
		Name:       EventCriticalAlert,
		Partition:  "tenant_metro",
		Payload:    map[string]any{"incident_id": "abc"},
		OccurredAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// The partition routes the event to its channel; subscribers on that
	// channel must not see it in the body.
	assert.NotContains(t, decoded, "partition")
	assert.Equal(t, EventCriticalAlert, decoded["event"])
}
