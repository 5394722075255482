package curatorimpl

import (
	"io"
	"testing"
	"time"

	mock_dashboard "github.com/orgball2608/insta-repost-curator/internal/dashboard/mocks"
	"github.com/orgball2608/insta-repost-curator/internal/instagram"
	mock_queuedpost "github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost/mocks"
	mock_storage "github.com/orgball2608/insta-repost-curator/internal/storage/mocks"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	curator   *CuratorImpl
	storage   *mock_storage.MockClient
	repo      *mock_queuedpost.MockRepository
	dashboard *mock_dashboard.MockClient
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HikerAPI.Key = "test-key"
	cfg.HikerAPI.Timeout = 2 * time.Second
	cfg.Curator.MockCount = 3
	cfg.Curator.Concurrency = 4
	cfg.Media.FetchTimeout = 2 * time.Second
	cfg.Media.MaxBytes = 1 << 20
	cfg.Storage.Prefix = "public"
	return cfg
}

func newFixture(t *testing.T, cfg *config.Config, ig instagram.Client) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		storage:   mock_storage.NewMockClient(ctrl),
		repo:      mock_queuedpost.NewMockRepository(ctrl),
		dashboard: mock_dashboard.NewMockClient(ctrl),
	}
	f.curator = New(Opts{
		Config:      cfg,
		Logger:      logger.New(logger.Opts{Writer: io.Discard}),
		Instagram:   ig,
		Storage:     f.storage,
		QueuedPosts: f.repo,
		Dashboard:   f.dashboard,
	})
	return f
}
