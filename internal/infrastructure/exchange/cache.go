package exchange

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// CachedSource keeps whole rate tables in redis so a busy approval queue does
// not hammer the external source. Cache failures fall through to the wrapped
// source; they never fail a lookup on their own.
type CachedSource struct {
	src RateSource
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedSource(src RateSource, rdb *redis.Client, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, rdb: rdb, ttl: ttl}
}

func rateKey(base string) string { return "fx:rates:" + strings.ToUpper(base) }

func (s *CachedSource) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	key := rateKey(base)
	if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached map[string]decimal.Decimal
		if json.Unmarshal(raw, &cached) == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	rates, err := s.src.Rates(ctx, base)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(rates); err == nil {
		_ = s.rdb.Set(ctx, key, payload, s.ttl).Err()
	}
	return rates, nil
}
