package dashboard

import (
	"context"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
)

const (
	DefaultLogLimit = 50
	MaxLogLimit     = 200
)

//go:generate go run go.uber.org/mock/mockgen -source=dashboard.go -destination=mocks/mock.go
type Client interface {
	// QueuedPosts returns posts waiting for the external workflow, oldest first.
	QueuedPosts(ctx context.Context) ([]*domain.QueuedPost, error)

	// RepostLogs returns the newest repost log entries, at most limit of them.
	RepostLogs(ctx context.Context, limit int) ([]*domain.RepostLogEntry, error)

	// Invalidate drops every cached view. Writers call it after a successful change.
	Invalidate()
}
