package repostlog

import (
	"context"
	"fmt"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/pkg/errors"
)

var ErrUnknownQueuedPost = fmt.Errorf("repost log references unknown queued post: %w", errors.ErrNotFound)

//go:generate go run go.uber.org/mock/mockgen -source=repostlog.go -destination=mocks/mock.go
type Repository interface {
	// Create appends a log entry. Entries are never updated or deduplicated.
	Create(ctx context.Context, entry *domain.RepostLogEntry) error

	// ListRecent returns the newest entries joined with their queued post.
	ListRecent(ctx context.Context, limit int) ([]*domain.RepostLogEntry, error)
}
