package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Recorder bumps the per-day counters the surrounding backend's dashboards
// read. Increments are best-effort; a failed bump is logged by the caller
// and never fails the request.
type Recorder interface {
	IncrLogin(ctx context.Context, now time.Time) error
	IncrRegistration(ctx context.Context, now time.Time) error
}

type RedisRecorder struct {
	client *redis.Client
}

func NewRedisRecorder(client *redis.Client) *RedisRecorder {
	return &RedisRecorder{client: client}
}

func (r *RedisRecorder) IncrLogin(ctx context.Context, now time.Time) error {
	return r.client.Incr(ctx, DailyKey("logins", now)).Err()
}

func (r *RedisRecorder) IncrRegistration(ctx context.Context, now time.Time) error {
	return r.client.Incr(ctx, DailyKey("registrations", now)).Err()
}

// DailyKey builds the counter key for the given day, e.g.
// "counters:logins:2026-08-31".
func DailyKey(name string, now time.Time) string {
	return fmt.Sprintf("counters:%s:%s", name, now.UTC().Format("2006-01-02"))
}

// NoopRecorder drops all counter bumps. Used when REDIS_ADDR is unset and in
// tests.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (r *NoopRecorder) IncrLogin(ctx context.Context, now time.Time) error { return nil }

func (r *NoopRecorder) IncrRegistration(ctx context.Context, now time.Time) error { return nil }
