package curatorimpl

import (
	"github.com/orgball2608/insta-repost-curator/internal/curator"
	"go.uber.org/fx"
)

var Module = fx.Module("curator",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(curator.Client)),
		),
	),
)
