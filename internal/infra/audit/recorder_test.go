package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"credcheck/config"
	"credcheck/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisAttemptRecorder_CountsPerOutcome(t *testing.T) {
	mr, client := newMiniRedis(t)
	recorder := NewRedisAttemptRecorder(client, time.Minute)
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	mismatch := entity.Rejected(entity.RejectSecretMismatch)
	for range 3 {
		require.NoError(t, recorder.Record(ctx, entity.VerificationAttempt{Identifier: "alice@example.com", Outcome: mismatch, At: now}))
	}
	admitted := entity.Admitted(uuid.New())
	require.NoError(t, recorder.Record(ctx, entity.VerificationAttempt{Identifier: "alice@example.com", Outcome: admitted, At: now}))

	count, err := mr.Get("credcheck:attempts:secret_mismatch:alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "3", count)

	count, err = mr.Get(AttemptKey("alice@example.com", admitted))
	require.NoError(t, err)
	assert.Equal(t, "1", count)

	assert.Equal(t, time.Minute, mr.TTL(AttemptKey("alice@example.com", mismatch)))
	assert.Equal(t, now.Format(time.RFC3339Nano), mr.HGet("credcheck:attempts:last:alice@example.com", "secret_mismatch"))
}

func TestRedisAttemptRecorder_WindowExpires(t *testing.T) {
	mr, client := newMiniRedis(t)
	recorder := NewRedisAttemptRecorder(client, time.Minute)
	attempt := entity.VerificationAttempt{Identifier: "bob@example.com", Outcome: entity.Rejected(entity.RejectUnknownIdentifier), At: time.Now()}

	require.NoError(t, recorder.Record(context.Background(), attempt))
	mr.FastForward(2 * time.Minute)

	assert.False(t, mr.Exists(AttemptKey("bob@example.com", attempt.Outcome)))
}

func TestRedisAttemptRecorder_ServerDown(t *testing.T) {
	mr, client := newMiniRedis(t)
	recorder := NewRedisAttemptRecorder(client, time.Minute)
	mr.Close()

	err := recorder.Record(context.Background(), entity.VerificationAttempt{Identifier: "alice@example.com", Outcome: entity.Rejected(entity.RejectMalformedInput)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record verification attempt")
}

func TestNewAttemptRecorder_NopWithoutClient(t *testing.T) {
	recorder := NewAttemptRecorder(RecorderParams{Config: &config.Config{}})

	assert.IsType(t, NopRecorder{}, recorder)
	assert.NoError(t, recorder.Record(context.Background(), entity.VerificationAttempt{}))
}

func TestNewAttemptRecorder_UsesConfiguredWindow(t *testing.T) {
	_, client := newMiniRedis(t)
	cfg := &config.Config{Redis: &config.RedisConfig{AttemptWindow: 5 * time.Minute}}

	recorder := NewAttemptRecorder(RecorderParams{Config: cfg, Client: client})

	require.IsType(t, &redisAttemptRecorder{}, recorder)
	assert.Equal(t, 5*time.Minute, recorder.(*redisAttemptRecorder).window)
}

func TestNewRedisClient_LifecyclePingsAndCloses(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Redis: &config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"}}

	client, err := NewRedisClient(RedisParams{Lifecycle: lc, Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)
	require.NotNil(t, client)

	lc.RequireStart()
	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	lc.RequireStop()
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	client, err := NewRedisClient(RedisParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(RedisParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Redis: &config.RedisConfig{URL: "http://nope"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}
