package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/insta-repost-curator/internal/curator"
	"github.com/orgball2608/insta-repost-curator/internal/dashboard"
	"github.com/orgball2608/insta-repost-curator/internal/ratelimit"
	"github.com/orgball2608/insta-repost-curator/internal/repost"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type Opts struct {
	fx.In

	LC        fx.Lifecycle
	Config    *config.Config
	Logger    logger.Logger
	Curator   curator.Client
	Dashboard dashboard.Client
	Repost    repost.Service
}

// New builds the HTTP server and ties it to the fx lifecycle.
func New(opts Opts) *http.Server {
	log := opts.Logger.WithComponent("HTTPServer")
	cfg := opts.Config

	if cfg.Webhook.Secret == "" {
		log.Warn("WEBHOOK_SECRET not set, repost-log webhook will reject every call")
	}

	handler := NewHandler(Deps{
		Curator:           opts.Curator,
		Dashboard:         opts.Dashboard,
		Repost:            opts.Repost,
		CurateLimiter:     ratelimit.NewInMemoryLimiter(cfg.Curator.RateLimit, time.Minute, cfg.Curator.RateBurst),
		WebhookSecret:     cfg.Webhook.Secret,
		Logger:            log,
		TrustProxyHeaders: cfg.App.TrustProxyHeaders,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			log.Info("Starting server", "addr", srv.Addr)

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			log.Info("Shutting down server")
			return srv.Shutdown(shutdownCtx)
		},
	})

	return srv
}

var Module = fx.Module("httpserver",
	fx.Provide(New),
	fx.Invoke(func(*http.Server) {}),
)
