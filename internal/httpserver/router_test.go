package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	mock_curator "github.com/orgball2608/insta-repost-curator/internal/curator/mocks"
	mock_dashboard "github.com/orgball2608/insta-repost-curator/internal/dashboard/mocks"
	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost"
	"github.com/orgball2608/insta-repost-curator/internal/repost"
	mock_repost "github.com/orgball2608/insta-repost-curator/internal/repost/mocks"
	pkgerrors "github.com/orgball2608/insta-repost-curator/pkg/errors"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/mock/gomock"
)

const (
	testSecret = "s3cret"
	queuedID   = "5b0c4c52-1a9e-4a7e-9f77-0d6a3a2b7f10"
)

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

type recordingLimiter struct{ keys []string }

func (l *recordingLimiter) Allow(key string) bool {
	l.keys = append(l.keys, key)
	return true
}

type fixture struct {
	handler   http.Handler
	curator   *mock_curator.MockClient
	dashboard *mock_dashboard.MockClient
	repost    *mock_repost.MockService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		curator:   mock_curator.NewMockClient(ctrl),
		dashboard: mock_dashboard.NewMockClient(ctrl),
		repost:    mock_repost.NewMockService(ctrl),
	}
	f.handler = NewHandler(Deps{
		Curator:       f.curator,
		Dashboard:     f.dashboard,
		Repost:        f.repost,
		WebhookSecret: testSecret,
		Logger:        logger.New(logger.Opts{Writer: io.Discard}),
	})
	return f
}

func (f *fixture) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
}

func TestCurate(t *testing.T) {
	f := newFixture(t)
	f.curator.EXPECT().FetchAndScore(gomock.Any(), "motovlog").Return(domain.FetchResult{
		Success: true,
		Message: "✅ Successfully fetched 1 unique posts from HikerAPI.",
		Posts:   []domain.Post{{ID: "1", EngagementScore: 10}},
	})

	rec := f.do(http.MethodPost, "/api/curate", `{"hashtags":"motovlog"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got domain.FetchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Posts) != 1 || got.Posts[0].EngagementScore != 10 {
		t.Errorf("posts = %+v", got.Posts)
	}
}

func TestCurate_NoTags(t *testing.T) {
	f := newFixture(t)
	f.curator.EXPECT().FetchAndScore(gomock.Any(), "").
		Return(domain.FetchResult{Success: false, Message: "Please provide at least one hashtag."})

	rec := f.do(http.MethodPost, "/api/curate", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCurate_RateLimited(t *testing.T) {
	f := newFixture(t)
	f.handler = NewHandler(Deps{
		Curator:       f.curator,
		CurateLimiter: denyAll{},
		Logger:        logger.New(logger.Opts{Writer: io.Discard}),
	})

	rec := f.do(http.MethodPost, "/api/curate", `{"hashtags":"a"}`, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestCurate_RateLimitKey(t *testing.T) {
	tests := []struct {
		name  string
		trust bool
		want  []string
	}{
		{"forwarded headers ignored by default", false, []string{"192.0.2.1", "192.0.2.1"}},
		{"forwarded headers honored behind proxy", true, []string{"203.0.113.1", "203.0.113.2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			limiter := &recordingLimiter{}
			f.handler = NewHandler(Deps{
				Curator:           f.curator,
				CurateLimiter:     limiter,
				Logger:            logger.New(logger.Opts{Writer: io.Discard}),
				TrustProxyHeaders: tt.trust,
			})
			f.curator.EXPECT().FetchAndScore(gomock.Any(), "a").
				Return(domain.FetchResult{Success: true, Posts: []domain.Post{}}).Times(2)

			for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
				rec := f.do(http.MethodPost, "/api/curate", `{"hashtags":"a"}`, map[string]string{"X-Forwarded-For": ip})
				if rec.Code != http.StatusOK {
					t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
				}
			}
			if !reflect.DeepEqual(limiter.keys, tt.want) {
				t.Errorf("limiter keys = %q, want %q", limiter.keys, tt.want)
			}
		})
	}
}

func TestQueue_StatusMapping(t *testing.T) {
	tests := []struct {
		result domain.ActionResult
		want   int
	}{
		{domain.ActionResult{Success: true, Message: "Post queued successfully!"}, http.StatusOK},
		{domain.ActionResult{Code: pkgerrors.CodeAlreadyQueued}, http.StatusConflict},
		{domain.ActionResult{Code: pkgerrors.CodeInvalidPost}, http.StatusBadRequest},
		{domain.ActionResult{Code: pkgerrors.CodeMediaFetchFailed}, http.StatusBadGateway},
		{domain.ActionResult{Code: pkgerrors.CodeStorageFailed}, http.StatusInternalServerError},
		{domain.ActionResult{Code: pkgerrors.CodePersistenceFailed}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		f := newFixture(t)
		f.curator.EXPECT().QueuePost(gomock.Any(), gomock.Any(), true).Return(tt.result)

		rec := f.do(http.MethodPost, "/api/queue", `{"post":{"id":"1","authorUsername":"a"},"storeMediaCopy":true}`, nil)
		if rec.Code != tt.want {
			t.Errorf("code %q: status = %d, want %d", tt.result.Code, rec.Code, tt.want)
		}
	}
}

func TestQueue_InvalidBody(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/queue", `{"post":`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListQueue(t *testing.T) {
	f := newFixture(t)
	f.dashboard.EXPECT().QueuedPosts(gomock.Any()).
		Return([]*domain.QueuedPost{{ID: queuedID, Status: domain.StatusQueued}}, nil)

	rec := f.do(http.MethodGet, "/api/queue", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), queuedID) {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestListLogs(t *testing.T) {
	f := newFixture(t)
	f.dashboard.EXPECT().RepostLogs(gomock.Any(), 20).Return([]*domain.RepostLogEntry{}, nil)

	rec := f.do(http.MethodGet, "/api/logs?limit=20", "", nil)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = f.do(http.MethodGet, "/api/logs?limit=abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRepostLog_Unauthorized(t *testing.T) {
	for name, header := range map[string]map[string]string{
		"missing": nil,
		"wrong":   bearer("nope"),
		"scheme":  {"Authorization": "Basic " + testSecret},
	} {
		t.Run(name, func(t *testing.T) {
			// The repost mock has no expectations: nothing may be recorded.
			f := newFixture(t)
			rec := f.do(http.MethodPost, "/api/repost-log", `{"queuedPostId":"`+queuedID+`","status":"success"}`, header)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestRepostLog_NoSecretConfigured(t *testing.T) {
	f := newFixture(t)
	f.handler = NewHandler(Deps{Repost: f.repost, Logger: logger.New(logger.Opts{Writer: io.Discard})})

	rec := f.do(http.MethodPost, "/api/repost-log", `{"queuedPostId":"x","status":"success"}`, bearer(""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRepostLog_BadRequest(t *testing.T) {
	for name, body := range map[string]string{
		"invalid json":   `{"queuedPostId":`,
		"missing id":     `{"status":"success"}`,
		"missing status": `{"queuedPostId":"` + queuedID + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.do(http.MethodPost, "/api/repost-log", body, bearer(testSecret))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRepostLog_Success(t *testing.T) {
	f := newFixture(t)
	f.repost.EXPECT().
		RecordOutcome(gomock.Any(), domain.RepostOutcome{QueuedPostID: queuedID, Status: "success", Details: "done"}).
		Return(&domain.RepostLogEntry{ID: "log-1"}, nil)

	rec := f.do(http.MethodPost, "/api/repost-log",
		`{"queuedPostId":"`+queuedID+`","status":"success","details":"done"}`, bearer(testSecret))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got webhookResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Success || got.Message != "Log updated successfully." {
		t.Errorf("response = %+v", got)
	}
}

func TestRepostLog_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", repost.ErrInvalidOutcome, http.StatusBadRequest},
		{"not found", queuedpost.ErrNotFound, http.StatusNotFound},
		{"persistence", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repost.EXPECT().RecordOutcome(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/repost-log",
				`{"queuedPostId":"`+queuedID+`","status":"failed"}`, bearer(testSecret))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusInternalServerError && !strings.Contains(rec.Body.String(), "Internal Server Error: ") {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}
}
