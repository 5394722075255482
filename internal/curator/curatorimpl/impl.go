package curatorimpl

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/orgball2608/insta-repost-curator/internal/curator"
	"github.com/orgball2608/insta-repost-curator/internal/dashboard"
	"github.com/orgball2608/insta-repost-curator/internal/instagram"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost"
	"github.com/orgball2608/insta-repost-curator/internal/storage"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config      *config.Config
	Logger      logger.Logger
	Instagram   instagram.Client
	Storage     storage.Client
	QueuedPosts queuedpost.Repository
	Dashboard   dashboard.Client
}

type CuratorImpl struct {
	instagram   instagram.Client
	storage     storage.Client
	queuedPosts queuedpost.Repository
	dashboard   dashboard.Client
	logger      logger.Logger

	apiKeyConfigured bool
	mockCount        int
	concurrency      int

	mediaClient   *http.Client
	mediaTimeout  time.Duration
	mediaMaxBytes int64
	storagePrefix string

	intn func(n int) int
	now  func() time.Time
}

func New(opts Opts) *CuratorImpl {
	cfg := opts.Config

	concurrency := cfg.Curator.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &CuratorImpl{
		instagram:        opts.Instagram,
		storage:          opts.Storage,
		queuedPosts:      opts.QueuedPosts,
		dashboard:        opts.Dashboard,
		logger:           opts.Logger.WithComponent("Curator"),
		apiKeyConfigured: cfg.HikerAPI.Key != "",
		mockCount:        cfg.Curator.MockCount,
		concurrency:      concurrency,
		mediaClient:      &http.Client{},
		mediaTimeout:     cfg.Media.FetchTimeout,
		mediaMaxBytes:    cfg.Media.MaxBytes,
		storagePrefix:    cfg.Storage.Prefix,
		intn:             rand.Intn,
		now:              time.Now,
	}
}

var _ curator.Client = (*CuratorImpl)(nil)
