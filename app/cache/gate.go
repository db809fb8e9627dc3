package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// GateEntry is a cached positive access-gate decision.
type GateEntry struct {
	ExpiryDate time.Time `json:"expiry_date"`
	PlanType   string    `json:"plan_type"`
}

// GateCache stores positive gate decisions. Every Invalidate bumps a per-investor
// generation; Set only stores an entry when the generation still matches the one
// the caller read with Version before loading the investor.
type GateCache interface {
	Get(ctx context.Context, investorID string) (*GateEntry, error)
	Version(ctx context.Context, investorID string) (int64, error)
	Set(ctx context.Context, investorID string, entry GateEntry, ttl time.Duration, version int64) error
	Invalidate(ctx context.Context, investorID string) error
}

type RedisClient interface {
	redis.Scripter
	Get(ctx context.Context, key string) *redis.StringCmd
}

// generationTTL outlives any gate entry so a fill cannot observe a reset generation.
const generationTTL = 24 * time.Hour

var setIfCurrentScript = redis.NewScript(`
local current = redis.call('GET', KEYS[2])
if not current then current = '0' end
if current ~= ARGV[2] then return 0 end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

var invalidateScript = redis.NewScript(`
redis.call('DEL', KEYS[1])
local generation = redis.call('INCR', KEYS[2])
redis.call('PEXPIRE', KEYS[2], ARGV[1])
return generation
`)

type RedisGateCache struct {
	client RedisClient
	prefix string
}

func NewRedisGateCache(client RedisClient, prefix string) *RedisGateCache {
	return &RedisGateCache{client: client, prefix: prefix}
}

// Get returns nil without error on a cache miss.
func (c *RedisGateCache) Get(ctx context.Context, investorID string) (*GateEntry, error) {
	raw, err := c.client.Get(ctx, c.key(investorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry := &GateEntry{}
	if err := json.Unmarshal(raw, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *RedisGateCache) Version(ctx context.Context, investorID string) (int64, error) {
	version, err := c.client.Get(ctx, c.generationKey(investorID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *RedisGateCache) Set(ctx context.Context, investorID string, entry GateEntry, ttl time.Duration, version int64) error {
	if ttl < time.Millisecond {
		return nil
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return setIfCurrentScript.Run(ctx, c.client,
		[]string{c.key(investorID), c.generationKey(investorID)},
		string(raw), strconv.FormatInt(version, 10), ttl.Milliseconds(),
	).Err()
}

func (c *RedisGateCache) Invalidate(ctx context.Context, investorID string) error {
	return invalidateScript.Run(ctx, c.client,
		[]string{c.key(investorID), c.generationKey(investorID)},
		generationTTL.Milliseconds(),
	).Err()
}

func (c *RedisGateCache) key(investorID string) string {
	return c.prefix + "gate:" + investorID
}

func (c *RedisGateCache) generationKey(investorID string) string {
	return c.prefix + "gate-gen:" + investorID
}

// NoopGateCache is used when no Redis address is configured.
type NoopGateCache struct{}

func (NoopGateCache) Get(context.Context, string) (*GateEntry, error) { return nil, nil }

func (NoopGateCache) Version(context.Context, string) (int64, error) { return 0, nil }

func (NoopGateCache) Set(context.Context, string, GateEntry, time.Duration, int64) error { return nil }

func (NoopGateCache) Invalidate(context.Context, string) error { return nil }
