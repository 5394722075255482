package repost

import (
	"context"
	"fmt"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/pkg/errors"
)

var ErrInvalidOutcome = fmt.Errorf("invalid repost outcome: %w", errors.ErrInvalidInput)

//go:generate go run go.uber.org/mock/mockgen -source=repost.go -destination=mocks/mock.go
type Service interface {
	// RecordOutcome applies a reported repost result: the queued post moves to reposted
	// or failed and one log entry is appended. Invalid input wraps ErrInvalidOutcome and
	// an unknown queued post wraps errors.ErrNotFound.
	RecordOutcome(ctx context.Context, outcome domain.RepostOutcome) (*domain.RepostLogEntry, error)
}
