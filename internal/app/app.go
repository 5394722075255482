package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-repost-curator/internal/curator/curatorimpl"
	"github.com/orgball2608/insta-repost-curator/internal/dashboard/dashboardimpl"
	"github.com/orgball2608/insta-repost-curator/internal/httpserver"
	"github.com/orgball2608/insta-repost-curator/internal/instagram/hikerapi"
	"github.com/orgball2608/insta-repost-curator/internal/migrations"
	repositories "github.com/orgball2608/insta-repost-curator/internal/repositories/fx"
	"github.com/orgball2608/insta-repost-curator/internal/repost/repostimpl"
	"github.com/orgball2608/insta-repost-curator/internal/storage/s3"
	"github.com/orgball2608/insta-repost-curator/internal/telegram/telegramimpl"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"github.com/orgball2608/insta-repost-curator/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	repositories.Module,
	hikerapi.Module,
	s3.Module,
	telegramimpl.Module,
	dashboardimpl.Module,
	curatorimpl.Module,
	repostimpl.Module,
	fx.Invoke(runMigrations),
	httpserver.Module,
)

// runMigrations takes the pool so its ping hook is registered, and therefore runs, first.
func runMigrations(lc fx.Lifecycle, _ *pgxpool.Pool, cfg *config.Config, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrations.Up(ctx, cfg, log.WithComponent("Migrations"))
		},
	})
}
