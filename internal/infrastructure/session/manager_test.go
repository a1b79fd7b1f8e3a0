package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/infrastructure/kv"
	"vitrine/internal/shared/logger"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func setupManager(t *testing.T) (*Manager, kv.Store, *fakeClock) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	store := kv.NewRedisStore(client)
	clock := newFakeClock()
	m := NewManager(store, 24*time.Hour, logger.NewLogger())
	m.now = clock.Now
	return m, store, clock
}

func TestManager_IssueAndValidate(t *testing.T) {
	m, _, _ := setupManager(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, IsWellFormed(token))

	assert.True(t, m.Validate(ctx, token))
}

func TestManager_ValidateRejectsMalformed(t *testing.T) {
	m, _, _ := setupManager(t)
	ctx := context.Background()

	assert.False(t, m.Validate(ctx, ""))
	assert.False(t, m.Validate(ctx, "not-a-token"))
	assert.False(t, m.Validate(ctx, "ZZZZ41d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2c8f0a9b3"))
}

func TestManager_ValidateRejectsUnknownToken(t *testing.T) {
	m, _, _ := setupManager(t)

	unknown := "41d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2"
	assert.False(t, m.Validate(context.Background(), unknown))
}

func TestManager_ExpiredSessionIsDeletedOnRead(t *testing.T) {
	m, store, clock := setupManager(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, "1.2.3.4")
	require.NoError(t, err)

	clock.Advance(24*time.Hour + time.Second)

	assert.False(t, m.Validate(ctx, token), "session past expiry must be invalid")

	_, found, err := store.Get(ctx, keyPrefix+token)
	require.NoError(t, err)
	assert.False(t, found, "expired record must be removed on first observation")

	// Expired sessions are never revived
	assert.False(t, m.Validate(ctx, token))
}

func TestManager_ValidAtBoundary(t *testing.T) {
	m, _, clock := setupManager(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, "1.2.3.4")
	require.NoError(t, err)

	clock.Advance(24*time.Hour - time.Second)
	assert.True(t, m.Validate(ctx, token), "strictly before expiresAt is valid")

	clock.Advance(time.Second)
	assert.False(t, m.Validate(ctx, token), "now == expiresAt is invalid")
}

func TestManager_Revoke(t *testing.T) {
	m, _, _ := setupManager(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, m.Validate(ctx, token))

	require.NoError(t, m.Revoke(ctx, token))
	assert.False(t, m.Validate(ctx, token))
}

func TestManager_ConcurrentIssueProducesDistinctTokens(t *testing.T) {
	m, _, _ := setupManager(t)
	ctx := context.Background()

	const n = 1000
	tokens := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := m.Issue(ctx, "1.2.3.4")
			assert.NoError(t, err)
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[string]struct{}, n)
	for token := range tokens {
		seen[token] = struct{}{}
	}
	assert.Len(t, seen, n, "all issued tokens must be distinct")
}

// failingStore simulates key-value store outages.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("store unavailable")
}

func (failingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("store unavailable")
}

func (failingStore) Delete(ctx context.Context, key string) error {
	return errors.New("store unavailable")
}

func (failingStore) ScanPrefix(ctx context.Context, prefix string) ([]kv.Entry, error) {
	return nil, errors.New("store unavailable")
}

func TestManager_FailsClosedOnStoreError(t *testing.T) {
	m := NewManager(failingStore{}, time.Hour, logger.NewLogger())

	token := "41d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2c8f0a9b341d2"
	assert.False(t, m.Validate(context.Background(), token),
		"store errors must never grant access")
}

func TestManager_IssueSurfacesStoreError(t *testing.T) {
	m := NewManager(failingStore{}, time.Hour, logger.NewLogger())

	_, err := m.Issue(context.Background(), "1.2.3.4")
	assert.Error(t, err, "a failed write must fail the login attempt")
}

func TestManager_RecordCarriesClientIP(t *testing.T) {
	m, store, _ := setupManager(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, "203.0.113.7")
	require.NoError(t, err)

	data, found, err := store.Get(ctx, keyPrefix+token)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(data), "203.0.113.7")
}
