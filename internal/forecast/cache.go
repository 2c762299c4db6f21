package forecast

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/fishcast/internal/observability"
)

// CachedSource decorates a Source with a single-entry TTL cache. Feed
// etiquette more than performance: one upstream pull serves every request
// for the TTL window, and concurrent misses collapse into one refresh.
type CachedSource struct {
	source  Source
	ttl     time.Duration
	metrics *observability.Metrics

	mu        sync.Mutex
	bundle    Bundle
	fetchedAt time.Time

	ready atomic.Bool
}

// NewCachedSource wraps source with a TTL cache.
func NewCachedSource(source Source, ttl time.Duration, metrics *observability.Metrics) *CachedSource {
	return &CachedSource{
		source:  source,
		ttl:     ttl,
		metrics: metrics,
	}
}

// FetchAll returns the cached bundle while it is fresh and refreshes it
// through the wrapped source once it expires. The refresh happens under
// the cache lock, so only one caller hits the upstream feeds at a time.
func (c *CachedSource) FetchAll(ctx context.Context) Bundle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && clock.Now().Sub(c.fetchedAt) < c.ttl {
		c.metrics.Cache.WithLabelValues("hit").Inc()
		return c.bundle
	}

	c.metrics.Cache.WithLabelValues("miss").Inc()
	c.bundle = c.source.FetchAll(ctx)
	c.fetchedAt = clock.Now()

	c.ready.Store(true)
	c.metrics.SourceReady.Set(1)
	return c.bundle
}

// CheckReadiness reports whether a bundle has ever been produced. A
// fallback bundle counts: the service is serving, just degraded.
func (c *CachedSource) CheckReadiness(_ context.Context) error {
	if !c.ready.Load() {
		return errors.New("no conditions fetched yet")
	}
	return nil
}
