package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const summaryCacheKey = "reports:summary"

// ReportCache keeps the admin dashboard summary in redis so repeated
// dashboard refreshes do not re-run the grouped counts. Cache failures are
// non-fatal; the usecase falls back to the database.
type ReportCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, log *logrus.Logger) *ReportCache {
	return &ReportCache{
		client: client,
		log:    log,
		ttl:    60 * time.Second,
	}
}

// GetSummary loads the cached summary into dest. Returns false on a miss.
func (c *ReportCache) GetSummary(ctx context.Context, dest interface{}) bool {
	raw, err := c.client.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read summary cache (non-fatal): %+v", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warnf("Failed to decode summary cache, dropping it: %+v", err)
		c.Invalidate(ctx)
		return false
	}
	return true
}

// SetSummary stores the summary with the cache TTL.
func (c *ReportCache) SetSummary(ctx context.Context, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode summary cache (non-fatal): %+v", err)
		return
	}
	if err := c.client.Set(ctx, summaryCacheKey, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write summary cache (non-fatal): %+v", err)
	}
}

// Invalidate drops the cached summary, e.g. after a status transition.
func (c *ReportCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, summaryCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate summary cache (non-fatal): %+v", err)
	}
}
