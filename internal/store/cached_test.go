package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

type fakeCache struct {
	data    map[string][]byte
	gets    int
	hits    int
	deletes [][]string
	failAll bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.gets++
	if f.failAll {
		return false, errors.New("connection refused")
	}
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	f.hits++
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if f.failAll {
		return errors.New("connection refused")
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.deletes = append(f.deletes, keys)
	if f.failAll {
		return errors.New("connection refused")
	}
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeCache) Close() error { return nil }

func TestCachedServesRepeatedListsFromCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	s := store.NewCached(store.NewMemory(), cache, time.Minute, nil)

	_, err := s.CreateJob(ctx, talents.FixtureJobs()[0])
	require.NoError(t, err)

	first, err := s.ListJobs(ctx)
	require.NoError(t, err)
	second, err := s.ListJobs(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.hits)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.True(t, first[0].CreatedAt.Equal(second[0].CreatedAt))
}

func TestCachedInvalidatesOnWrite(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	s := store.NewCached(store.NewMemory(), cache, time.Minute, nil)

	job, err := s.CreateJob(ctx, talents.FixtureJobs()[0])
	require.NoError(t, err)
	_, err = s.ListJobs(ctx)
	require.NoError(t, err)

	fields := talents.FieldsOf(job)
	fields.Title = "Renomeada"
	require.NoError(t, s.UpdateJob(ctx, job.ID, fields))

	jobs, err := s.ListJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renomeada", jobs[0].Title)

	tal, err := s.CreateTalentProfile(ctx, registration())
	require.NoError(t, err)
	_, err = s.ListJobs(ctx)
	require.NoError(t, err)
	_, err = s.CreateApplication(ctx, job.ID, tal.ID)
	require.NoError(t, err)

	jobs, err = s.ListJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, jobs[0].Candidates)
}

func TestCachedSkipsInvalidationOnFailedWrite(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	s := store.NewCached(store.NewMemory(), cache, time.Minute, nil)

	_, err := s.CreateJob(ctx, talents.JobFields{})
	require.Error(t, err)
	assert.Empty(t, cache.deletes)
}

func TestCachedBypassesBrokenCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	cache.failAll = true
	s := store.NewCached(store.NewMemory(), cache, 0, nil)

	_, err := s.CreateTalentProfile(ctx, registration())
	require.NoError(t, err)

	list, err := s.ListTalents(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	cache := newFakeCache()
	s := store.NewCached(store.Unconfigured{}, cache, time.Minute, nil)

	_, err := s.ListJobs(context.Background())
	require.ErrorIs(t, err, store.ErrNotConfigured)
	assert.Empty(t, cache.data)
}

func TestRedisCacheBypassesWhenUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c := store.NewRedisCache(ctx, store.RedisOptions{Addr: "127.0.0.1:1"}, nil)
	assert.False(t, c.Available())

	var out []string
	hit, err := c.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.SetJSON(ctx, "k", []string{"v"}, time.Second))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Close())
}
