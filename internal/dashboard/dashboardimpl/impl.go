package dashboardimpl

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/orgball2608/insta-repost-curator/internal/dashboard"
	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/repostlog"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

const (
	queueKey  = "queue"
	cacheSize = 64
)

type Opts struct {
	fx.In

	Config      *config.Config
	Logger      logger.Logger
	QueuedPosts queuedpost.Repository
	RepostLogs  repostlog.Repository
}

type DashboardImpl struct {
	queuedPosts queuedpost.Repository
	repostLogs  repostlog.Repository
	logger      logger.Logger

	// Both caches are nil when VIEW_CACHE_TTL is zero.
	queue *expirable.LRU[string, []*domain.QueuedPost]
	logs  *expirable.LRU[string, []*domain.RepostLogEntry]

	// gen is bumped by Invalidate. A read only fills the cache if gen did not move
	// while it was querying, so a stale result cannot outlive a purge.
	mu  sync.Mutex
	gen uint64
}

func New(opts Opts) *DashboardImpl {
	d := &DashboardImpl{
		queuedPosts: opts.QueuedPosts,
		repostLogs:  opts.RepostLogs,
		logger:      opts.Logger.WithComponent("Dashboard"),
	}
	if ttl := opts.Config.View.CacheTTL; ttl > 0 {
		d.queue = expirable.NewLRU[string, []*domain.QueuedPost](1, nil, ttl)
		d.logs = expirable.NewLRU[string, []*domain.RepostLogEntry](cacheSize, nil, ttl)
	}
	return d
}

var _ dashboard.Client = (*DashboardImpl)(nil)

func (d *DashboardImpl) QueuedPosts(ctx context.Context) ([]*domain.QueuedPost, error) {
	if d.queue != nil {
		if posts, ok := d.queue.Get(queueKey); ok {
			return posts, nil
		}
	}

	gen := d.generation()
	posts, err := d.queuedPosts.ListByStatus(ctx, domain.StatusQueued, domain.StatusProcessing)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued posts: %w", err)
	}
	if posts == nil {
		posts = []*domain.QueuedPost{}
	}

	if d.queue != nil {
		d.store(gen, func() { d.queue.Add(queueKey, posts) })
	}
	return posts, nil
}

func (d *DashboardImpl) RepostLogs(ctx context.Context, limit int) ([]*domain.RepostLogEntry, error) {
	limit = ClampLimit(limit)
	key := fmt.Sprintf("logs:%d", limit)

	if d.logs != nil {
		if entries, ok := d.logs.Get(key); ok {
			return entries, nil
		}
	}

	gen := d.generation()
	entries, err := d.repostLogs.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list repost logs: %w", err)
	}
	if entries == nil {
		entries = []*domain.RepostLogEntry{}
	}

	if d.logs != nil {
		d.store(gen, func() { d.logs.Add(key, entries) })
	}
	return entries, nil
}

func (d *DashboardImpl) Invalidate() {
	if d.queue == nil {
		return
	}
	d.mu.Lock()
	d.gen++
	d.queue.Purge()
	d.logs.Purge()
	d.mu.Unlock()
	d.logger.Debug("Views invalidated")
}

func (d *DashboardImpl) generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

func (d *DashboardImpl) store(gen uint64, add func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen {
		return
	}
	add()
}

// ClampLimit maps a requested log limit onto 1..MaxLogLimit, using the default for non-positive values.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return dashboard.DefaultLogLimit
	case limit > dashboard.MaxLogLimit:
		return dashboard.MaxLogLimit
	default:
		return limit
	}
}
