package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient points at a port nothing listens on.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisCache_SetRejectsUnencodableValue(t *testing.T) {
	c := NewRedisCache(unreachableClient())

	err := c.Set(context.Background(), "k", make(chan int), time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode k")
}

func TestRedisCache_DeleteWithoutKeysIsNoop(t *testing.T) {
	c := NewRedisCache(unreachableClient())

	assert.NoError(t, c.Delete(context.Background()))
}

func TestRedisTokenStore_RevokeWithoutTTLIsNoop(t *testing.T) {
	s := NewRedisTokenStore(unreachableClient())

	assert.NoError(t, s.Revoke(context.Background(), "jti", 0))
}

func TestRedisCache_GetReportsConnectionErrors(t *testing.T) {
	c := NewRedisCache(unreachableClient())

	var dest map[string]any
	found, err := c.Get(context.Background(), "k", &dest)

	assert.False(t, found)
	assert.Error(t, err)
}

type countingLock struct {
	refreshes atomic.Int32
	err       error
}

func (l *countingLock) Refresh(_ context.Context, _ time.Duration, _ *redislock.Options) error {
	l.refreshes.Add(1)
	return l.err
}

func TestKeepAlive_RefreshesUntilStopped(t *testing.T) {
	lock := &countingLock{}

	stop := keepAlive(lock, 20*time.Millisecond)

	assert.Eventually(t, func() bool { return lock.refreshes.Load() >= 3 }, time.Second, 5*time.Millisecond)
	stop()
	after := lock.refreshes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, lock.refreshes.Load())
}

func TestKeepAlive_StopsWhenLockIsLost(t *testing.T) {
	lock := &countingLock{err: redislock.ErrNotObtained}

	stop := keepAlive(lock, 20*time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool { return lock.refreshes.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), lock.refreshes.Load())
}

func TestKeepAlive_ZeroTTLIsNoop(t *testing.T) {
	lock := &countingLock{}

	stop := keepAlive(lock, 0)
	stop()

	assert.Equal(t, int32(0), lock.refreshes.Load())
}
