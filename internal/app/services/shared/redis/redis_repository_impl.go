package redis

import (
	"context"
	"pulseflow-service/internal/app/contracts"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return r.client.Set(ctx, key, value, exp).Err()
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisRepository) Increment(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

var counterFloorScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if cur < floor then
	redis.call('SET', KEYS[1], floor)
end
return redis.call('GET', KEYS[1])
`)

// SetCounterFloor raises the counter to at least floor without ever lowering
// it, so concurrent seeding cannot reissue identifiers.
func (r *redisRepository) SetCounterFloor(ctx context.Context, key string, floor int64) error {
	return counterFloorScript.Run(ctx, r.client, []string{key}, floor).Err()
}

func (r *redisRepository) Publish(ctx context.Context, channel string, payload string) error {
	return r.client.Publish(ctx, channel, payload).Err()
}

type changeSubscription struct {
	pubsub *redis.PubSub
	events chan string
	cancel context.CancelFunc
}

func (s *changeSubscription) Events() <-chan string {
	return s.events
}

// Close cancels the forwarding goroutine before closing the connection, so a
// forward parked on a full events buffer cannot outlive the subscription.
func (s *changeSubscription) Close() error {
	s.cancel()
	return s.pubsub.Close()
}

// Subscribe opens one pub/sub connection over the given channels. Each
// delivered message is reduced to its channel name; payloads carry no delta
// and are never inspected.
func (r *redisRepository) Subscribe(ctx context.Context, channels ...string) contracts.ChangeSubscription {
	forwardCtx, cancel := context.WithCancel(ctx)
	pubsub := r.client.Subscribe(ctx, channels...)
	sub := &changeSubscription{
		pubsub: pubsub,
		events: make(chan string, len(channels)),
		cancel: cancel,
	}

	go forwardEvents(forwardCtx, pubsub.Channel(), sub.events)

	return sub
}

func forwardEvents(ctx context.Context, in <-chan *redis.Message, out chan string) {
	defer close(out)
	for {
		select {
		case msg, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- msg.Channel:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
