package repostlog

import (
	"go.uber.org/fx"
)

var Module = fx.Module("repost_log_repository",
	fx.Provide(
		NewPgx,
		func(repo *Pgx) Repository {
			return repo
		},
	),
)
