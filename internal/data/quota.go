package data

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinetalk/internal/biz"
	"cinetalk/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"
)

const (
	defaultQuotaLimit  = 20
	defaultQuotaWindow = time.Minute

	// Upper bound on clients tracked by the in-process fallback.
	maxTrackedClients = 10000
)

type completionQuota struct {
	data   *Data
	limit  int
	window time.Duration
	log    *log.Helper

	// Fallback used while redis is unavailable.
	mu         sync.Mutex
	limiters   map[string]*clientLimiter
	lastSweep  time.Time
	maxClients int
	now        func() time.Time
}

type clientLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

// NewCompletionQuota creates a per-client quota for completion calls. It
// counts in redis when available and falls back to in-process token buckets.
func NewCompletionQuota(data *Data, c *conf.Completion, logger log.Logger) biz.CompletionQuota {
	limit := int(c.QuotaLimit)
	if limit <= 0 {
		limit = defaultQuotaLimit
	}
	window := c.QuotaWindow.AsDuration()
	if window <= 0 {
		window = defaultQuotaWindow
	}
	return &completionQuota{
		data:       data,
		limit:      limit,
		window:     window,
		log:        log.NewHelper(logger),
		limiters:   make(map[string]*clientLimiter),
		maxClients: maxTrackedClients,
		now:        time.Now,
	}
}

func (q *completionQuota) Allow(ctx context.Context, key string) (bool, error) {
	if q.data.rdb == nil {
		return q.limiter(key).Allow(), nil
	}

	// Fixed window: the first hit of a window sets its expiry.
	windowKey := fmt.Sprintf("quota:completion:%s:%d", key, time.Now().UnixNano()/int64(q.window))
	pipe := q.data.rdb.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.ExpireNX(ctx, windowKey, q.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to count completion quota: %w", err)
	}
	return incr.Val() <= int64(q.limit), nil
}

func (q *completionQuota) limiter(key string) *rate.Limiter {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	if now.Sub(q.lastSweep) >= q.window {
		q.sweep(now)
	}

	l, ok := q.limiters[key]
	if !ok {
		if len(q.limiters) >= q.maxClients {
			q.sweep(now)
		}
		if len(q.limiters) >= q.maxClients {
			return rate.NewLimiter(0, 0)
		}
		l = &clientLimiter{Limiter: rate.NewLimiter(rate.Every(q.window/time.Duration(q.limit)), q.limit)}
		q.limiters[key] = l
	}
	l.lastSeen = now
	return l.Limiter
}

// sweep drops limiters idle for a whole window. Such a bucket has refilled
// to its burst, so a fresh limiter behaves the same.
func (q *completionQuota) sweep(now time.Time) {
	for key, l := range q.limiters {
		if now.Sub(l.lastSeen) >= q.window {
			delete(q.limiters, key)
		}
	}
	q.lastSweep = now
}
