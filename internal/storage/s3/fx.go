package s3

import (
	"github.com/orgball2608/insta-repost-curator/internal/storage"
	"go.uber.org/fx"
)

var Module = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(storage.Client)),
		),
	),
)
