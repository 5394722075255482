package queuedpost

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/repositories"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
)

const table = "queued_posts"

var summaryColumns = []string{
	"id", "created_at", "instagram_post_id", "instagram_url", "author_username", "status", "engagement_score",
}

type Pgx struct {
	db     repositories.DB
	logger logger.Logger
}

func NewPgx(db repositories.DB, logger logger.Logger) *Pgx {
	return &Pgx{
		db:     db,
		logger: logger.WithComponent("QueuedPostRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, post *domain.QueuedPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Status == "" {
		post.Status = domain.StatusQueued
	}
	post.CreatedAt = time.Now().UTC()

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns(
			"id", "created_at", "instagram_post_id", "instagram_url", "author_username", "caption",
			"media_url", "media_type", "engagement_score", "post_data", "status", "media_storage_path",
		).
		Values(
			post.ID, post.CreatedAt, post.InstagramPostID, post.InstagramURL, post.AuthorUsername, post.Caption,
			post.MediaURL, post.MediaType, post.EngagementScore, post.PostData, string(post.Status), post.MediaStoragePath,
		).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err = p.db.Exec(ctx, query, args...); err != nil {
		if repositories.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	p.logger.Debug("Queued post inserted", "id", post.ID, "instagram_post_id", post.InstagramPostID)
	return nil
}

func (p *Pgx) UpdateStatus(ctx context.Context, id string, status domain.QueueStatus) (*domain.QueuedPost, error) {
	query, args, err := repositories.SqBuilder.
		Update(table).
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, created_at, instagram_post_id, instagram_url, author_username, status, engagement_score").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	post, err := scanSummary(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return post, nil
}

func (p *Pgx) ListByStatus(ctx context.Context, statuses ...domain.QueueStatus) ([]*domain.QueuedPost, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query, args, err := repositories.SqBuilder.
		Select(summaryColumns...).
		From(table).
		Where(sq.Eq{"status": values}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.QueuedPost
	for rows.Next() {
		post, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func scanSummary(row pgx.Row) (*domain.QueuedPost, error) {
	var (
		post   domain.QueuedPost
		status string
	)
	if err := row.Scan(
		&post.ID,
		&post.CreatedAt,
		&post.InstagramPostID,
		&post.InstagramURL,
		&post.AuthorUsername,
		&status,
		&post.EngagementScore,
	); err != nil {
		return nil, err
	}
	post.Status = domain.QueueStatus(status)
	return &post, nil
}
