package repostlog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/repositories"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
)

const (
	table = "repost_log"

	foreignKeyViolation = "23503"
)

type Pgx struct {
	db     repositories.DB
	logger logger.Logger
}

func NewPgx(db repositories.DB, logger logger.Logger) *Pgx {
	return &Pgx{
		db:     db,
		logger: logger.WithComponent("RepostLogRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Create(ctx context.Context, entry *domain.RepostLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now().UTC()
	if entry.RepostTimestamp.IsZero() {
		entry.RepostTimestamp = entry.CreatedAt
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("id", "created_at", "queued_post_id", "status", "repost_timestamp", "details").
		Values(entry.ID, entry.CreatedAt, entry.QueuedPostID, entry.Status, entry.RepostTimestamp, entry.Details).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err = p.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return ErrUnknownQueuedPost
		}
		return err
	}

	return nil
}

func (p *Pgx) ListRecent(ctx context.Context, limit int) ([]*domain.RepostLogEntry, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"l.id", "l.created_at", "l.queued_post_id", "l.status", "l.repost_timestamp", "l.details",
			"q.author_username", "q.instagram_url",
		).
		From(table + " l").
		Join("queued_posts q ON q.id = l.queued_post_id").
		OrderBy("l.repost_timestamp DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.RepostLogEntry
	for rows.Next() {
		var e domain.RepostLogEntry
		if err := rows.Scan(
			&e.ID,
			&e.CreatedAt,
			&e.QueuedPostID,
			&e.Status,
			&e.RepostTimestamp,
			&e.Details,
			&e.AuthorUsername,
			&e.InstagramURL,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
