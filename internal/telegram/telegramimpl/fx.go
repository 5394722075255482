package telegramimpl

import (
	"github.com/orgball2608/insta-repost-curator/internal/telegram"
	"go.uber.org/fx"
)

var Module = fx.Module("telegram",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(telegram.Client)),
		),
	),
)
