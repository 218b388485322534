package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/talents"
)

const (
	jobsCacheKey    = "talents:jobs"
	talentsCacheKey = "talents:talents"

	DefaultCacheTTL = 10 * time.Minute
)

// Cached serves ListJobs and ListTalents from a cache and drops both keys
// after every successful write. Cache failures never fail a call.
type Cached struct {
	Store
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

var _ Store = (*Cached)(nil)

// NewCached wraps next. A non-positive ttl means DefaultCacheTTL.
func NewCached(next Store, cache Cache, ttl time.Duration, logger *zap.Logger) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{Store: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *Cached) ListJobs(ctx context.Context) ([]*talents.Job, error) {
	return cachedList(ctx, c, jobsCacheKey, c.Store.ListJobs)
}

func (c *Cached) ListTalents(ctx context.Context) ([]*talents.Talent, error) {
	return cachedList(ctx, c, talentsCacheKey, c.Store.ListTalents)
}

func (c *Cached) CreateJob(ctx context.Context, fields talents.JobFields) (*talents.Job, error) {
	job, err := c.Store.CreateJob(ctx, fields)
	if err == nil {
		c.invalidate(ctx, jobsCacheKey)
	}
	return job, err
}

func (c *Cached) UpdateJob(ctx context.Context, id string, fields talents.JobFields) error {
	err := c.Store.UpdateJob(ctx, id, fields)
	if err == nil {
		c.invalidate(ctx, jobsCacheKey)
	}
	return err
}

func (c *Cached) CreateTalentProfile(ctx context.Context, fields talents.TalentFields) (*talents.Talent, error) {
	t, err := c.Store.CreateTalentProfile(ctx, fields)
	if err == nil {
		c.invalidate(ctx, talentsCacheKey)
	}
	return t, err
}

// CreateApplication changes the candidate count of the job.
func (c *Cached) CreateApplication(ctx context.Context, jobID, talentID string) (*talents.Application, error) {
	app, err := c.Store.CreateApplication(ctx, jobID, talentID)
	if err == nil {
		c.invalidate(ctx, jobsCacheKey)
	}
	return app, err
}

func (c *Cached) Close() {
	if err := c.cache.Close(); err != nil {
		c.logger.Warn("closing cache", zap.Error(err))
	}
	c.Store.Close()
}

func (c *Cached) invalidate(ctx context.Context, keys ...string) {
	if err := c.cache.Delete(ctx, keys...); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func cachedList[T any](ctx context.Context, c *Cached, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var out []T
	hit, err := c.cache.GetJSON(ctx, key, &out)
	if err != nil {
		c.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return out, nil
	}

	out, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.cache.SetJSON(ctx, key, out, c.ttl); err != nil {
		c.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
