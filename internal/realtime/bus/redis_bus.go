package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/realtime"
)

const DefaultChannel = "erp.changes"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

type RedisBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewRedisBus(log *logger.Logger, cfg RedisConfig) (*RedisBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(cfg.Channel)
	if ch == "" {
		ch = DefaultChannel
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBus{
		log:     log.With("service", "RedisChangeBus", "channel", ch),
		rdb:     rdb,
		channel: ch,
	}, nil
}

func (b *RedisBus) Publish(ctx context.Context, ev realtime.ChangeEvent) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis change bus not initialized")
	}
	raw, err := Encode(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// Client exposes the connection for health collectors.
func (b *RedisBus) Client() *goredis.Client {
	if b == nil {
		return nil
	}
	return b.rdb
}

func (b *RedisBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}

// Encode is the wire form published on the channel.
func Encode(ev realtime.ChangeEvent) ([]byte, error) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	return json.Marshal(ev)
}

func Decode(raw []byte) (realtime.ChangeEvent, error) {
	var ev realtime.ChangeEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return realtime.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	return ev, nil
}
