package repostimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/insta-repost-curator/internal/dashboard"
	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/repostlog"
	"github.com/orgball2608/insta-repost-curator/internal/repost"
	"github.com/orgball2608/insta-repost-curator/internal/telegram"
	"github.com/orgball2608/insta-repost-curator/pkg/formatter"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

const maxNotifiedDetails = 300

type Opts struct {
	fx.In

	Logger      logger.Logger
	QueuedPosts queuedpost.Repository
	RepostLogs  repostlog.Repository
	Dashboard   dashboard.Client
	Telegram    telegram.Client
}

type RepostImpl struct {
	queuedPosts queuedpost.Repository
	repostLogs  repostlog.Repository
	dashboard   dashboard.Client
	telegram    telegram.Client
	logger      logger.Logger
	now         func() time.Time
}

func New(opts Opts) *RepostImpl {
	return &RepostImpl{
		queuedPosts: opts.QueuedPosts,
		repostLogs:  opts.RepostLogs,
		dashboard:   opts.Dashboard,
		telegram:    opts.Telegram,
		logger:      opts.Logger.WithComponent("Repost"),
		now:         time.Now,
	}
}

var _ repost.Service = (*RepostImpl)(nil)

func (r *RepostImpl) RecordOutcome(ctx context.Context, outcome domain.RepostOutcome) (*domain.RepostLogEntry, error) {
	outcome.QueuedPostID = strings.TrimSpace(outcome.QueuedPostID)
	if err := validate(outcome); err != nil {
		return nil, err
	}

	status := outcome.QueueStatus()
	post, err := r.queuedPosts.UpdateStatus(ctx, outcome.QueuedPostID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update queued post status: %w", err)
	}

	entry := &domain.RepostLogEntry{
		QueuedPostID:    outcome.QueuedPostID,
		Status:          outcome.Status,
		RepostTimestamp: r.now().UTC(),
		Details:         outcome.Details,
	}
	if err := r.repostLogs.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append repost log: %w", err)
	}
	entry.AuthorUsername = post.AuthorUsername
	entry.InstagramURL = post.InstagramURL

	r.dashboard.Invalidate()
	r.logger.Info("Repost outcome recorded",
		"queued_post_id", outcome.QueuedPostID,
		"reported_status", outcome.Status,
		"status", status,
	)

	if err := r.telegram.SendMessageToUser(notification(post, status, outcome.Details)); err != nil {
		r.logger.Warn("Failed to notify operator", "queued_post_id", outcome.QueuedPostID, "error", err)
	}

	return entry, nil
}

func validate(outcome domain.RepostOutcome) error {
	if outcome.QueuedPostID == "" {
		return fmt.Errorf("%w: queuedPostId is required", repost.ErrInvalidOutcome)
	}
	if strings.TrimSpace(outcome.Status) == "" {
		return fmt.Errorf("%w: status is required", repost.ErrInvalidOutcome)
	}
	if _, err := uuid.Parse(outcome.QueuedPostID); err != nil {
		return fmt.Errorf("%w: queuedPostId is not a valid id", repost.ErrInvalidOutcome)
	}
	return nil
}

func notification(post *domain.QueuedPost, status domain.QueueStatus, details string) string {
	var sb strings.Builder
	if status == domain.StatusReposted {
		sb.WriteString("✅ *Reposted* ")
	} else {
		sb.WriteString("❌ *Repost failed* ")
	}
	sb.WriteString(formatter.EscapeMarkdownV2("@" + post.AuthorUsername))
	sb.WriteString("\n")
	sb.WriteString(formatter.EscapeMarkdownV2(post.InstagramURL))
	if details = strings.TrimSpace(details); details != "" {
		sb.WriteString("\n")
		sb.WriteString(formatter.EscapeMarkdownV2(formatter.Truncate(details, maxNotifiedDetails)))
	}
	return sb.String()
}
