package hikerapi

import (
	"github.com/orgball2608/insta-repost-curator/internal/instagram"
	"go.uber.org/fx"
)

var Module = fx.Module("hikerapi",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(instagram.Client)),
		),
	),
)
