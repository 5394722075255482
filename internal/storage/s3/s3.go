package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/orgball2608/insta-repost-curator/internal/storage"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

var ErrNotConfigured = errors.New("object storage is not configured")

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Client struct {
	minio  *minio.Client
	bucket string
	logger logger.Logger
}

// New builds an S3 client for the configured endpoint. Without an endpoint the
// client is still returned and every Upload fails with ErrNotConfigured.
func New(opts Opts) (*Client, error) {
	cfg := opts.Config.Storage
	c := &Client{
		bucket: cfg.Bucket,
		logger: opts.Logger.WithComponent("Storage"),
	}
	if cfg.Endpoint == "" {
		c.logger.Warn("STORAGE_ENDPOINT not set, media copies are disabled")
		return c, nil
	}

	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	c.minio = mc
	return c, nil
}

var _ storage.Client = (*Client)(nil)

func (c *Client) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	if c.minio == nil {
		return ErrNotConfigured
	}

	info, err := c.minio.PutObject(ctx, c.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", c.bucket, path, err)
	}

	c.logger.Info("Media stored", "bucket", info.Bucket, "key", info.Key, "size", info.Size)
	return nil
}
