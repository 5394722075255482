package dashboardimpl

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
	mock_queuedpost "github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost/mocks"
	mock_repostlog "github.com/orgball2608/insta-repost-curator/internal/repositories/repostlog/mocks"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	dash  *DashboardImpl
	posts *mock_queuedpost.MockRepository
	logs  *mock_repostlog.MockRepository
}

func newFixture(t *testing.T, ttl time.Duration) fixture {
	ctrl := gomock.NewController(t)
	posts := mock_queuedpost.NewMockRepository(ctrl)
	logs := mock_repostlog.NewMockRepository(ctrl)

	cfg := &config.Config{}
	cfg.View.CacheTTL = ttl

	return fixture{
		dash: New(Opts{
			Config:      cfg,
			Logger:      logger.New(logger.Opts{Writer: io.Discard}),
			QueuedPosts: posts,
			RepostLogs:  logs,
		}),
		posts: posts,
		logs:  logs,
	}
}

func TestQueuedPosts_CachedUntilInvalidated(t *testing.T) {
	f := newFixture(t, time.Minute)
	want := []*domain.QueuedPost{{ID: "a", Status: domain.StatusQueued}}

	f.posts.EXPECT().
		ListByStatus(gomock.Any(), domain.StatusQueued, domain.StatusProcessing).
		Return(want, nil).
		Times(2)

	for i := 0; i < 3; i++ {
		got, err := f.dash.QueuedPosts(context.Background())
		if err != nil {
			t.Fatalf("QueuedPosts() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("QueuedPosts() = %+v", got)
		}
	}

	f.dash.Invalidate()
	if _, err := f.dash.QueuedPosts(context.Background()); err != nil {
		t.Fatalf("QueuedPosts() after Invalidate error = %v", err)
	}
}

func TestQueuedPosts_NoCache(t *testing.T) {
	f := newFixture(t, 0)

	f.posts.EXPECT().
		ListByStatus(gomock.Any(), domain.StatusQueued, domain.StatusProcessing).
		Return(nil, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		got, err := f.dash.QueuedPosts(context.Background())
		if err != nil {
			t.Fatalf("QueuedPosts() error = %v", err)
		}
		if got == nil {
			t.Fatal("QueuedPosts() = nil, want empty slice")
		}
	}
	f.dash.Invalidate()
}

func TestQueuedPosts_Error(t *testing.T) {
	f := newFixture(t, time.Minute)
	boom := errors.New("db down")

	f.posts.EXPECT().ListByStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	if _, err := f.dash.QueuedPosts(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("QueuedPosts() error = %v, want %v", err, boom)
	}
}

func TestRepostLogs_ClampsLimit(t *testing.T) {
	f := newFixture(t, 0)

	gomock.InOrder(
		f.logs.EXPECT().ListRecent(gomock.Any(), 50).Return([]*domain.RepostLogEntry{}, nil),
		f.logs.EXPECT().ListRecent(gomock.Any(), 200).Return([]*domain.RepostLogEntry{}, nil),
		f.logs.EXPECT().ListRecent(gomock.Any(), 7).Return([]*domain.RepostLogEntry{{ID: "x"}}, nil),
	)

	for _, limit := range []int{0, 1000, 7} {
		if _, err := f.dash.RepostLogs(context.Background(), limit); err != nil {
			t.Fatalf("RepostLogs(%d) error = %v", limit, err)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct{ in, want int }{{-1, 50}, {0, 50}, {1, 1}, {200, 200}, {201, 200}}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestQueuedPosts_InvalidateDuringReadSkipsCache(t *testing.T) {
	f := newFixture(t, time.Minute)
	stale := []*domain.QueuedPost{{ID: "stale", Status: domain.StatusQueued}}
	fresh := []*domain.QueuedPost{{ID: "fresh", Status: domain.StatusReposted}}

	gomock.InOrder(
		f.posts.EXPECT().
			ListByStatus(gomock.Any(), domain.StatusQueued, domain.StatusProcessing).
			DoAndReturn(func(context.Context, ...domain.QueueStatus) ([]*domain.QueuedPost, error) {
				f.dash.Invalidate()
				return stale, nil
			}),
		f.posts.EXPECT().
			ListByStatus(gomock.Any(), domain.StatusQueued, domain.StatusProcessing).
			Return(fresh, nil),
	)

	if got, _ := f.dash.QueuedPosts(context.Background()); got[0].ID != "stale" {
		t.Fatalf("first read = %q, want stale", got[0].ID)
	}
	got, err := f.dash.QueuedPosts(context.Background())
	if err != nil {
		t.Fatalf("QueuedPosts() error = %v", err)
	}
	if got[0].ID != "fresh" {
		t.Errorf("second read = %q, want fresh", got[0].ID)
	}
}

func TestRepostLogs_InvalidateDuringReadSkipsCache(t *testing.T) {
	f := newFixture(t, time.Minute)

	gomock.InOrder(
		f.logs.EXPECT().ListRecent(gomock.Any(), 50).
			DoAndReturn(func(context.Context, int) ([]*domain.RepostLogEntry, error) {
				f.dash.Invalidate()
				return []*domain.RepostLogEntry{{ID: "old"}}, nil
			}),
		f.logs.EXPECT().ListRecent(gomock.Any(), 50).
			Return([]*domain.RepostLogEntry{{ID: "new"}, {ID: "old"}}, nil),
	)

	if _, err := f.dash.RepostLogs(context.Background(), 0); err != nil {
		t.Fatalf("RepostLogs() error = %v", err)
	}
	got, err := f.dash.RepostLogs(context.Background(), 0)
	if err != nil {
		t.Fatalf("RepostLogs() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "new" {
		t.Errorf("RepostLogs() = %+v, want the post-invalidate view", got)
	}
}
