package repostimpl

import (
	"github.com/orgball2608/insta-repost-curator/internal/repost"
	"go.uber.org/fx"
)

var Module = fx.Module("repost",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(repost.Service)),
		),
	),
)
