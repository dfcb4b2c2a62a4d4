package infra

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"applicant-intake/intake/domain"

	"github.com/redis/go-redis/v9"
)

const registrationsField = "registrations"

type RedisStatsStore struct {
	rdb *redis.Client

	prefix string
	// ttl aplica apenas nas chaves de série temporal.
	// total e por cargo são cumulativos e não expiram.
	ttl time.Duration

	bucket string // "minute" (padrão) ou "none"
}

type RedisStatsOption func(*RedisStatsStore)

func WithStatsPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStatsStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithStatsTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStatsStore) { s.ttl = d }
}

func WithStatsBucket(bucket string) RedisStatsOption {
	return func(s *RedisStatsStore) { s.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func NewRedisStatsStore(rdb *redis.Client, opts ...RedisStatsOption) *RedisStatsStore {
	s := &RedisStatsStore{
		rdb:    rdb,
		prefix: "intake:stats",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStatsStore) totalKey() string    { return s.prefix + ":total" }
func (s *RedisStatsStore) positionKey() string { return s.prefix + ":position" }

func (s *RedisStatsStore) Record(ctx context.Context, ev domain.StatsEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.totalKey(), registrationsField, 1)

	if s.bucket == "minute" {
		bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, bucketKey, registrationsField, 1)
		if s.ttl > 0 {
			pipe.Expire(ctx, bucketKey, s.ttl)
		}
	}

	if p := strings.TrimSpace(ev.Position); p != "" {
		pipe.HIncrBy(ctx, s.positionKey(), p, 1)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStatsStore) Snapshot(ctx context.Context) (domain.StatsSnapshot, error) {
	snap := domain.StatsSnapshot{ByPosition: map[string]int64{}}
	if s == nil || s.rdb == nil {
		return snap, nil
	}

	pipe := s.rdb.Pipeline()
	totalCmd := pipe.HGet(ctx, s.totalKey(), registrationsField)
	posCmd := pipe.HGetAll(ctx, s.positionKey())
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return snap, fmt.Errorf("redis stats snapshot: %w", err)
	}

	// Val() é "" quando o HGET deu redis.Nil (nenhum cadastro ainda)
	return parseStatsSnapshot(totalCmd.Val(), posCmd.Val())
}

// parseStatsSnapshot converte os valores lidos do Redis (HGET do total e
// HGETALL por cargo). total vazio conta como zero.
func parseStatsSnapshot(total string, byPosition map[string]string) (domain.StatsSnapshot, error) {
	snap := domain.StatsSnapshot{ByPosition: make(map[string]int64, len(byPosition))}

	if total != "" {
		n, err := strconv.ParseInt(total, 10, 64)
		if err != nil {
			return snap, fmt.Errorf("parse total %q: %w", total, err)
		}
		snap.Total = n
	}

	for pos, v := range byPosition {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return snap, fmt.Errorf("parse position %q count %q: %w", pos, v, err)
		}
		snap.ByPosition[pos] = n
	}
	return snap, nil
}
