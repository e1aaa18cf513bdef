package sessions

import (
	"context"
	"errors"
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRedis struct {
	values map[string]string
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	value, ok := f.values[key]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return value, nil
}

func (f *fakeRedis) Increment(_ context.Context, _ string) (int64, error) { return 0, nil }
func (f *fakeRedis) SetCounterFloor(_ context.Context, _ string, _ int64) error {
	return nil
}
func (f *fakeRedis) Publish(_ context.Context, _ string, _ string) error { return nil }
func (f *fakeRedis) Subscribe(_ context.Context, _ ...string) contracts.ChangeSubscription {
	return nil
}

func testJWTConfig() config.AppJWT {
	return config.AppJWT{Secret: "test-secret", ExpTimeInHour: 12}
}

func TestLogin(t *testing.T) {
	t.Run("Token resolves back to the stored session", func(t *testing.T) {
		redis := newFakeRedis()
		svc := NewSessionService(redis, testJWTConfig())

		token, err := svc.Login(context.Background(), &requests.Login{UserID: "dr-mehta", Role: constvars.RoleDoctor})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		sessionID, err := utils.ParseSessionJWT(token, "test-secret")
		assert.NoError(t, err)

		session, err := svc.GetSession(context.Background(), sessionID)
		assert.NoError(t, err)
		assert.Equal(t, "dr-mehta", session.UserID)
		assert.Equal(t, constvars.RoleDoctor, session.Role)
		assert.True(t, session.ExpiresAt.After(time.Now()), "session expiry should be in the future")
	})

	t.Run("Session lives under the keyed prefix", func(t *testing.T) {
		redis := newFakeRedis()
		svc := NewSessionService(redis, testJWTConfig())

		_, err := svc.Login(context.Background(), &requests.Login{UserID: "front-desk", Role: constvars.RoleReceptionist})
		assert.NoError(t, err)

		assert.Len(t, redis.values, 1)
		for key := range redis.values {
			assert.Contains(t, key, constvars.RedisKeySessionPrefix)
		}
	})
}

func TestGetSession(t *testing.T) {
	t.Run("Missing session maps to an auth error", func(t *testing.T) {
		redis := newFakeRedis()
		svc := NewSessionService(redis, testJWTConfig())

		session, err := svc.GetSession(context.Background(), "never-issued")
		assert.Error(t, err)
		assert.Nil(t, session)
	})

	t.Run("Corrupt payload rejected", func(t *testing.T) {
		redis := newFakeRedis()
		redis.values[constvars.RedisKeySessionPrefix+"broken"] = "{not json"
		svc := NewSessionService(redis, testJWTConfig())

		session, err := svc.GetSession(context.Background(), "broken")
		assert.Error(t, err)
		assert.Nil(t, session)
	})
}
