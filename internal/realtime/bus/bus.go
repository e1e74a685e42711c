package bus

import (
	"context"
	"sync"

	"github.com/yungbote/erp-backend/internal/realtime"
)

// Bus carries change events to other processes.
type Bus interface {
	Publish(ctx context.Context, ev realtime.ChangeEvent) error
	Close() error
}

type noopBus struct{}

// NewNoopBus drops every event. Used when no broker is configured.
func NewNoopBus() Bus { return noopBus{} }

func (noopBus) Publish(context.Context, realtime.ChangeEvent) error { return nil }
func (noopBus) Close() error                                        { return nil }

// MemoryBus keeps published events in process.
type MemoryBus struct {
	mu     sync.Mutex
	events []realtime.ChangeEvent
	err    error
}

func NewMemoryBus() *MemoryBus { return &MemoryBus{} }

// FailWith makes subsequent publishes return err.
func (b *MemoryBus) FailWith(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

func (b *MemoryBus) Publish(_ context.Context, ev realtime.ChangeEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, ev)
	return nil
}

func (b *MemoryBus) Events() []realtime.ChangeEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]realtime.ChangeEvent(nil), b.events...)
}

func (b *MemoryBus) Close() error { return nil }
