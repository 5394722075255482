package hikerapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orgball2608/insta-repost-curator/internal/instagram"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
)

func newTestClient(t *testing.T, baseURL string, cacheTTL time.Duration) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.HikerAPI.Key = "test-key"
	cfg.HikerAPI.BaseURL = baseURL
	cfg.HikerAPI.Timeout = 2 * time.Second
	cfg.HikerAPI.CacheTTL = cacheTTL
	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{Writer: io.Discard})})
}

func TestClient_RecentHashtagMedias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/hashtag/medias/recent" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "motorcycles" {
			t.Errorf("name = %q, want motorcycles", got)
		}
		if got := r.Header.Get("x-access-key"); got != "test-key" {
			t.Errorf("x-access-key = %q", got)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = io.WriteString(w, `{"data":[
			{"pk":"1","code":"a","user":{"username":"u1"},"display_url":"https://cdn.example.com/1.jpg","like_count":10},
			{"pk":"2","code":"b","user":{"username":"u2"}},
			{"pk":"3","code":"c","user":{"username":"u3"},"thumbnail_url":"https://cdn.example.com/3.jpg","comment_count":2}
		]}`)
	}))
	defer srv.Close()

	posts, err := newTestClient(t, srv.URL, 0).RecentHashtagMedias(context.Background(), "motorcycles")
	if err != nil {
		t.Fatalf("RecentHashtagMedias() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2 (item without media skipped)", len(posts))
	}
	if posts[0].ID != "1" || posts[1].ID != "3" {
		t.Errorf("ids = %q, %q", posts[0].ID, posts[1].ID)
	}
}

func TestClient_FallsBackToV1(t *testing.T) {
	var v1Calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/hashtag/medias/recent":
			http.Error(w, "not found", http.StatusNotFound)
		case "/v1/hashtag/medias/recent":
			v1Calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"pk":"9","display_url":"https://cdn.example.com/9.jpg"}]`)
		}
	}))
	defer srv.Close()

	posts, err := newTestClient(t, srv.URL, 0).RecentHashtagMedias(context.Background(), "bikes")
	if err != nil {
		t.Fatalf("RecentHashtagMedias() error = %v", err)
	}
	if len(posts) != 1 || v1Calls.Load() != 1 {
		t.Errorf("posts = %d, v1 calls = %d", len(posts), v1Calls.Load())
	}
}

func TestClient_FailureClasses(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		status      int
		body        string
		want        error
	}{
		{"server error", "application/json", http.StatusInternalServerError, `{}`, instagram.ErrUnexpectedStatus},
		{"html page", "text/html", http.StatusOK, `<html>login</html>`, instagram.ErrUnexpectedContentType},
		{"broken json", "application/json", http.StatusOK, `{"data":[`, instagram.ErrInvalidJSON},
		{"unknown envelope", "application/json", http.StatusOK, `{"results":[]}`, instagram.ErrUnexpectedShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL, 0).RecentHashtagMedias(context.Background(), "x")
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClient_CachesSuccessfulBodies(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"pk":"1","display_url":"https://cdn.example.com/1.jpg"}]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Minute)
	for i := 0; i < 3; i++ {
		if _, err := c.RecentHashtagMedias(context.Background(), "cached"); err != nil {
			t.Fatalf("RecentHashtagMedias() error = %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("upstream calls = %d, want 1", calls.Load())
	}
}
