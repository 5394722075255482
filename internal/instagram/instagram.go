package instagram

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
)

var (
	ErrUnexpectedStatus      = errors.New("unexpected status code")
	ErrUnexpectedContentType = errors.New("unexpected content type")
	ErrInvalidJSON           = errors.New("invalid JSON body")
	ErrUnexpectedShape       = errors.New("unrecognized response shape")
)

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go
type Client interface {
	// RecentHashtagMedias returns the recent media for a hashtag, normalized into posts.
	// Scores are left at zero; ranking is the caller's concern.
	RecentHashtagMedias(ctx context.Context, tag string) ([]domain.Post, error)
}
