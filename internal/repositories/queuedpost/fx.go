package queuedpost

import (
	"go.uber.org/fx"
)

var Module = fx.Module("queued_post_repository",
	fx.Provide(
		NewPgx,
		func(repo *Pgx) Repository {
			return repo
		},
	),
)
