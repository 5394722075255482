package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateQueuedPosts, downCreateQueuedPosts)
}

func upCreateQueuedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE queued_posts (
		id                 UUID PRIMARY KEY,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		instagram_post_id  VARCHAR NOT NULL UNIQUE,
		instagram_url      VARCHAR NOT NULL,
		author_username    VARCHAR NOT NULL,
		caption            TEXT NOT NULL DEFAULT '',
		media_url          VARCHAR NOT NULL DEFAULT '',
		media_type         VARCHAR NOT NULL DEFAULT 'IMAGE',
		engagement_score   INTEGER NOT NULL DEFAULT 0,
		post_data          JSONB,
		status             VARCHAR NOT NULL DEFAULT 'queued'
			CHECK (status IN ('queued', 'processing', 'reposted', 'failed', 'ignored')),
		media_storage_path VARCHAR
	);
	CREATE INDEX queued_posts_status_created_at_idx ON queued_posts (status, created_at);
	`)
	return err
}

func downCreateQueuedPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE queued_posts;`)
	return err
}
