package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateRepostLog, downCreateRepostLog)
}

func upCreateRepostLog(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE repost_log (
		id               UUID PRIMARY KEY,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		queued_post_id   UUID NOT NULL REFERENCES queued_posts (id),
		status           VARCHAR NOT NULL,
		repost_timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
		details          TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX repost_log_repost_timestamp_idx ON repost_log (repost_timestamp DESC);
	`)
	return err
}

func downCreateRepostLog(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE repost_log;`)
	return err
}
