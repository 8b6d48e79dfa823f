package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key layout, one namespace per visitor:
//
//	visitor:{id}:theme        "dark" | "light"
//	visitor:{id}:clock_format "24" | "12"
//	visitor:{id}:visit_count  decimal integer string
//	visitor:{id}:last_visit   RFC 3339 timestamp string
const (
	visitorKeyPrefix = "visitor:"
	themeSuffix      = ":theme"
	clockSuffix      = ":clock_format"
	countSuffix      = ":visit_count"
	lastVisitSuffix  = ":last_visit"
	visitorTTL       = 365 * 24 * time.Hour
)

// VisitorStateRepository is the per-visitor key-value store behind theme and
// clock preferences and the visit counter. Absent keys read as zero values,
// never as errors.
type VisitorStateRepository interface {
	GetTheme(ctx context.Context, visitorID string) (string, error)
	SetTheme(ctx context.Context, visitorID, theme string) error

	GetClockFormat(ctx context.Context, visitorID string) (string, error)
	SetClockFormat(ctx context.Context, visitorID, format string) error

	// GetVisitCount returns 0 for absent or non-numeric values.
	GetVisitCount(ctx context.Context, visitorID string) (int, error)
	SetVisitCount(ctx context.Context, visitorID string, count int) error

	// GetLastVisit returns nil for absent or unparseable timestamps.
	GetLastVisit(ctx context.Context, visitorID string) (*time.Time, error)
	SetLastVisit(ctx context.Context, visitorID string, t time.Time) error

	// DeleteVisit removes both the count and the last-visit timestamp.
	DeleteVisit(ctx context.Context, visitorID string) error
}

// RedisVisitorRepository is the Redis implementation of VisitorStateRepository.
type RedisVisitorRepository struct {
	client *redis.Client
}

// NewRedisVisitorRepository creates a RedisVisitorRepository on the given client.
func NewRedisVisitorRepository(client *redis.Client) *RedisVisitorRepository {
	return &RedisVisitorRepository{client: client}
}

var _ VisitorStateRepository = (*RedisVisitorRepository)(nil)

func visitorKey(visitorID, suffix string) string {
	return visitorKeyPrefix + visitorID + suffix
}

func (r *RedisVisitorRepository) getString(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisVisitorRepository) GetTheme(ctx context.Context, visitorID string) (string, error) {
	return r.getString(ctx, visitorKey(visitorID, themeSuffix))
}

func (r *RedisVisitorRepository) SetTheme(ctx context.Context, visitorID, theme string) error {
	return r.client.Set(ctx, visitorKey(visitorID, themeSuffix), theme, visitorTTL).Err()
}

func (r *RedisVisitorRepository) GetClockFormat(ctx context.Context, visitorID string) (string, error) {
	return r.getString(ctx, visitorKey(visitorID, clockSuffix))
}

func (r *RedisVisitorRepository) SetClockFormat(ctx context.Context, visitorID, format string) error {
	return r.client.Set(ctx, visitorKey(visitorID, clockSuffix), format, visitorTTL).Err()
}

// GetVisitCount falls back to 0 when the key is absent or holds a value that
// does not parse as an integer.
func (r *RedisVisitorRepository) GetVisitCount(ctx context.Context, visitorID string) (int, error) {
	val, err := r.getString(ctx, visitorKey(visitorID, countSuffix))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (r *RedisVisitorRepository) SetVisitCount(ctx context.Context, visitorID string, count int) error {
	return r.client.Set(ctx, visitorKey(visitorID, countSuffix), strconv.Itoa(count), visitorTTL).Err()
}

// GetLastVisit falls back to nil when the key is absent or unparseable.
func (r *RedisVisitorRepository) GetLastVisit(ctx context.Context, visitorID string) (*time.Time, error) {
	val, err := r.getString(ctx, visitorKey(visitorID, lastVisitSuffix))
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil, nil
	}
	return &t, nil
}

func (r *RedisVisitorRepository) SetLastVisit(ctx context.Context, visitorID string, t time.Time) error {
	return r.client.Set(ctx, visitorKey(visitorID, lastVisitSuffix), t.UTC().Format(time.RFC3339), visitorTTL).Err()
}

func (r *RedisVisitorRepository) DeleteVisit(ctx context.Context, visitorID string) error {
	return r.client.Del(ctx,
		visitorKey(visitorID, countSuffix),
		visitorKey(visitorID, lastVisitSuffix),
	).Err()
}
