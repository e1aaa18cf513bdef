package contracts

import (
	"context"
	"time"
)

// ChangeSubscription is the notification channel abstraction: one message per
// remote change, no delta payload. Consumers always re-snapshot.
type ChangeSubscription interface {
	// Events yields the channel name each time a change fires.
	Events() <-chan string
	Close() error
}

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Increment(ctx context.Context, key string) (int64, error)
	SetCounterFloor(ctx context.Context, key string, floor int64) error
	Publish(ctx context.Context, channel string, payload string) error
	Subscribe(ctx context.Context, channels ...string) ChangeSubscription
}
