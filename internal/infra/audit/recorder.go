package audit

import (
	"context"
	"strings"
	"time"

	"credcheck/config"
	"credcheck/internal/domain/entity"
	"credcheck/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix       = "credcheck:attempts"
	outcomeAdmitted = "admitted"
)

// RecorderParams holds dependencies for the attempt recorder, injected by Fx.
type RecorderParams struct {
	fx.In

	Config *config.Config
	Client *redis.Client `optional:"true"`
}

// NewAttemptRecorder picks the Redis recorder when a client is available.
func NewAttemptRecorder(params RecorderParams) service.AttemptRecorder {
	if params.Client == nil {
		return NopRecorder{}
	}

	window := config.DefaultAttemptWindow
	if params.Config.Redis != nil && params.Config.Redis.AttemptWindow > 0 {
		window = params.Config.Redis.AttemptWindow
	}

	return NewRedisAttemptRecorder(params.Client, window)
}

// redisAttemptRecorder keeps one counter per identifier and outcome. Each
// attempt pushes the expiry out by window, so counters cover a sliding window.
type redisAttemptRecorder struct {
	client redis.Cmdable
	window time.Duration
}

// NewRedisAttemptRecorder builds a recorder on top of any go-redis client.
func NewRedisAttemptRecorder(client redis.Cmdable, window time.Duration) service.AttemptRecorder {
	return &redisAttemptRecorder{client: client, window: window}
}

func (r *redisAttemptRecorder) Record(ctx context.Context, attempt entity.VerificationAttempt) error {
	key := AttemptKey(attempt.Identifier, attempt.Outcome)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, r.window)
		pipe.HSet(ctx, lastAttemptKey(attempt.Identifier), outcomeLabel(attempt.Outcome), attempt.At.UTC().Format(time.RFC3339Nano))
		pipe.Expire(ctx, lastAttemptKey(attempt.Identifier), r.window)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to record verification attempt")
	}

	return nil
}

// AttemptKey is the counter key for identifier and outcome.
func AttemptKey(identifier string, outcome entity.VerificationOutcome) string {
	return strings.Join([]string{keyPrefix, outcomeLabel(outcome), identifier}, ":")
}

func lastAttemptKey(identifier string) string {
	return strings.Join([]string{keyPrefix, "last", identifier}, ":")
}

func outcomeLabel(outcome entity.VerificationOutcome) string {
	if outcome.Admitted {
		return outcomeAdmitted
	}

	return string(outcome.Reason)
}

// NopRecorder discards attempts.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, entity.VerificationAttempt) error { return nil }
