package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/realtime"
)

func TestEncodeWireShape(t *testing.T) {
	raw, err := Encode(realtime.ChangeEvent{
		Entity:     realtime.EntityOrder,
		Action:     realtime.ActionCreated,
		ID:         12,
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"entity":"order","action":"created","id":12,"occurred_at":"2024-01-01T00:00:00Z"}`, string(raw))

	ev, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, realtime.EntityOrder, ev.Entity)
	assert.Equal(t, int64(12), ev.ID)
}

func TestEncodeStampsOccurredAt(t *testing.T) {
	raw, err := Encode(realtime.ChangeEvent{Entity: realtime.EntityCustomer, Action: realtime.ActionDeleted, ID: 1})
	require.NoError(t, err)
	ev, err := Decode(raw)
	require.NoError(t, err)
	assert.False(t, ev.OccurredAt.IsZero())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestMemoryBus(t *testing.T) {
	b := NewMemoryBus()
	ctx := context.Background()
	require.NoError(t, b.Publish(ctx, realtime.ChangeEvent{Entity: realtime.EntityProduct, Action: realtime.ActionUpdated, ID: 3}))

	b.FailWith(errors.New("broker down"))
	assert.Error(t, b.Publish(ctx, realtime.ChangeEvent{ID: 4}))

	events := b.Events()
	require.Len(t, events, 1)
	assert.Equal(t, int64(3), events[0].ID)
}

func TestNoopBus(t *testing.T) {
	b := NewNoopBus()
	assert.NoError(t, b.Publish(context.Background(), realtime.ChangeEvent{}))
	assert.NoError(t, b.Close())
}

func TestNewRedisBusRequiresAddr(t *testing.T) {
	_, err := NewRedisBus(logger.NewNop(), RedisConfig{})
	assert.Error(t, err)
}
