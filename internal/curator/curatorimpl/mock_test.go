package curatorimpl

import (
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
)

func TestMockPosts(t *testing.T) {
	f := newFixture(t, testConfig(), nil)
	f.curator.now = func() time.Time { return time.Unix(0, 1700000000000000000) }
	calls := 0
	f.curator.intn = func(n int) int {
		calls++
		return n - 1
	}

	posts := f.curator.mockPosts("motovlog", "upstream returned 500", 4)
	if len(posts) != 4 {
		t.Fatalf("len(posts) = %d, want 4", len(posts))
	}
	if calls != 8 {
		t.Errorf("random draws = %d, want 8", calls)
	}

	p := posts[1]
	if p.ID != "motovlog_mock_1_1700000000000000000" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Shortcode != "mock_1" || p.URL != "https://www.instagram.com/p/mock_1/" {
		t.Errorf("Shortcode = %q, URL = %q", p.Shortcode, p.URL)
	}
	if p.AuthorUsername != "mock_user_1" {
		t.Errorf("AuthorUsername = %q", p.AuthorUsername)
	}
	if !strings.Contains(p.Caption, "#motovlog") || !strings.Contains(p.DisplayURL, "motovlog") {
		t.Errorf("Caption = %q, DisplayURL = %q", p.Caption, p.DisplayURL)
	}
	if strings.Contains(p.Caption, "500") {
		t.Error("failure reason leaked into the caption")
	}
	if p.LikesCount != 1999 || p.CommentsCount != 299 {
		t.Errorf("counts = %d/%d, want upper bounds 1999/299", p.LikesCount, p.CommentsCount)
	}
	if p.EngagementScore != domain.EngagementScore(1999, 299) {
		t.Errorf("EngagementScore = %d", p.EngagementScore)
	}
	if !posts[0].IsVideo || posts[1].IsVideo {
		t.Error("IsVideo should alternate starting with true")
	}
}

func TestMockPosts_CountsWithinBounds(t *testing.T) {
	f := newFixture(t, testConfig(), nil)

	for _, p := range f.curator.mockPosts("bikes", "test", 50) {
		if p.LikesCount < 0 || p.LikesCount >= mockMaxLikes {
			t.Fatalf("LikesCount = %d out of range", p.LikesCount)
		}
		if p.CommentsCount < 0 || p.CommentsCount >= mockMaxComments {
			t.Fatalf("CommentsCount = %d out of range", p.CommentsCount)
		}
	}
}
