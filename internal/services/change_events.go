package services

import (
	"context"
	"time"

	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/platform/ctxutil"
	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/realtime"
	"github.com/yungbote/erp-backend/internal/realtime/bus"
)

// ChangePublisher announces committed writes. Publishing never fails the
// caller; broker errors are logged and counted.
type ChangePublisher interface {
	Publish(ctx context.Context, entity realtime.Entity, action realtime.Action, id int64)
}

type changePublisher struct {
	bus     bus.Bus
	log     *logger.Logger
	metrics *observability.Metrics
}

func NewChangePublisher(b bus.Bus, log *logger.Logger, metrics *observability.Metrics) ChangePublisher {
	if b == nil {
		b = bus.NewNoopBus()
	}
	return &changePublisher{bus: b, log: log.With("service", "ChangePublisher"), metrics: metrics}
}

func (p *changePublisher) Publish(ctx context.Context, entity realtime.Entity, action realtime.Action, id int64) {
	ev := realtime.ChangeEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}
	if td := ctxutil.GetTraceData(ctx); td != nil {
		ev.TraceID = td.TraceID
		ev.RequestID = td.RequestID
	}
	if err := p.bus.Publish(ctx, ev); err != nil {
		p.metrics.IncChangeEvent(string(entity), string(action), "failed")
		p.log.Warn("change event publish failed",
			append(ctxutil.LogFields(ctx), "entity", entity, "action", action, "id", id, "error", err)...)
		return
	}
	p.metrics.IncChangeEvent(string(entity), string(action), "published")
}
