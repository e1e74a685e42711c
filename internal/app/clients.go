package app

import (
	"fmt"

	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/realtime/bus"
)

type Clients struct {
	// Events is the change-event bus. Redis backs it when configured.
	Events bus.Bus
	Redis  *bus.RedisBus
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	if cfg.Redis.Addr == "" {
		log.Info("REDIS_ADDR not set; change events are not published")
		return Clients{Events: bus.NewNoopBus()}, nil
	}
	rb, err := bus.NewRedisBus(log, cfg.Redis)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis change bus: %w", err)
	}
	return Clients{Events: rb, Redis: rb}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Events != nil {
		_ = c.Events.Close()
	}
}
