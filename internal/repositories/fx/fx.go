package fx

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-repost-curator/internal/repositories"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/repostlog"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		func(pool *pgxpool.Pool) repositories.DB {
			return pool
		},
	),
	queuedpost.Module,
	repostlog.Module,
)
