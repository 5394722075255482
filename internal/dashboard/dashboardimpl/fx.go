package dashboardimpl

import (
	"github.com/orgball2608/insta-repost-curator/internal/dashboard"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(dashboard.Client)),
		),
	),
)
