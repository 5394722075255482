package queuedpost

import (
	"context"
	"fmt"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/pkg/errors"
)

var (
	ErrAlreadyExists = fmt.Errorf("queued post already exists: %w", errors.ErrConflict)
	ErrNotFound      = fmt.Errorf("queued post not found: %w", errors.ErrNotFound)
)

//go:generate go run go.uber.org/mock/mockgen -source=queuedpost.go -destination=mocks/mock.go
type Repository interface {
	// Create inserts a new queued post, filling in ID and CreatedAt.
	// A second record for the same instagram post yields ErrAlreadyExists.
	Create(ctx context.Context, post *domain.QueuedPost) error

	// UpdateStatus sets the status of the queued post with the given id and returns the updated row.
	UpdateStatus(ctx context.Context, id string, status domain.QueueStatus) (*domain.QueuedPost, error)

	// ListByStatus returns queued posts in any of the given statuses, oldest first.
	ListByStatus(ctx context.Context, statuses ...domain.QueueStatus) ([]*domain.QueuedPost, error)
}
