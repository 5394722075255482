package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orgball2608/insta-repost-curator/internal/curator"
	"github.com/orgball2608/insta-repost-curator/internal/dashboard"
	"github.com/orgball2608/insta-repost-curator/internal/ratelimit"
	"github.com/orgball2608/insta-repost-curator/internal/repost"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
)

const maxRequestBodySize = 1 << 20

type Deps struct {
	Curator       curator.Client
	Dashboard     dashboard.Client
	Repost        repost.Service
	CurateLimiter ratelimit.Limiter
	WebhookSecret string
	Logger        logger.Logger

	// TrustProxyHeaders keys clients by forwarded headers instead of the peer address.
	TrustProxyHeaders bool
}

func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()
	if deps.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(deps.Logger))

	r.Get("/healthz", handleHealthz(deps))

	r.Route("/api", func(r chi.Router) {
		r.With(rateLimit(deps.CurateLimiter)).Post("/curate", handleCurate(deps))
		r.Post("/queue", handleQueuePost(deps))
		r.Get("/queue", handleListQueue(deps))
		r.Get("/logs", handleListLogs(deps))
		r.With(BearerAuth(deps.WebhookSecret)).Post("/repost-log", handleRepostLog(deps))
	})

	return r
}
