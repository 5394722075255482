package curator

import (
	"context"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=curator.go -destination=mocks/mock.go
type Client interface {
	// FetchAndScore fetches recent media for a comma separated list of hashtags and
	// returns them deduplicated and ranked by engagement. It never fails outright once
	// tags are given; failing tags are replaced with mock posts.
	FetchAndScore(ctx context.Context, hashtags string) domain.FetchResult

	// QueuePost stores a selected post for the repost workflow, optionally copying its media first.
	QueuePost(ctx context.Context, post domain.Post, storeMediaCopy bool) domain.ActionResult
}
