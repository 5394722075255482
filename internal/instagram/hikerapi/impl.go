package hikerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/instagram"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/orgball2608/insta-repost-curator/pkg/logger"
	"go.uber.org/fx"
)

const (
	userAgent    = "insta-repost-curator/1.0"
	maxBodyBytes = 8 << 20
	cacheSize    = 256
)

// Endpoints tried in order for every tag.
var recentMediaPaths = []string{
	"/v2/hashtag/medias/recent",
	"/v1/hashtag/medias/recent",
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	timeout    time.Duration
	cache      *expirable.LRU[string, []byte]
	logger     logger.Logger
}

func New(opts Opts) *Client {
	cfg := opts.Config.HikerAPI

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		accessKey:  cfg.Key,
		timeout:    cfg.Timeout,
		logger:     opts.Logger.WithComponent("HikerAPI"),
	}
	if cfg.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, []byte](cacheSize, nil, cfg.CacheTTL)
	}
	return c
}

var _ instagram.Client = (*Client)(nil)

func (c *Client) RecentHashtagMedias(ctx context.Context, tag string) ([]domain.Post, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(tag); ok {
			items, err := ExtractMediaItems(body)
			if err == nil {
				c.logger.Debug("Serving hashtag from cache", "tag", tag)
				return normalizeAll(items), nil
			}
			c.cache.Remove(tag)
		}
	}

	var lastErr error
	for _, path := range recentMediaPaths {
		body, err := c.get(ctx, path, tag)
		if err == nil {
			var items [][]byte
			items, err = ExtractMediaItems(body)
			if err == nil {
				if c.cache != nil {
					c.cache.Add(tag, body)
				}
				c.logger.Info("Fetched hashtag media", "tag", tag, "endpoint", path, "items", len(items))
				return normalizeAll(items), nil
			}
		}

		c.logger.Warn("Hashtag request failed", "tag", tag, "endpoint", path, "error", err)
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	return nil, fmt.Errorf("fetch hashtag %q: %w", tag, lastErr)
}

func (c *Client) get(ctx context.Context, path, tag string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + path + "?" + url.Values{"name": {tag}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-access-key", c.accessKey)
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer safeClose(resp.Body, c.logger)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", instagram.ErrUnexpectedStatus, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !isJSONMediaType(mediaType) {
		return nil, fmt.Errorf("%w: %q", instagram.ErrUnexpectedContentType, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if !json.Valid(body) {
		return nil, instagram.ErrInvalidJSON
	}

	return body, nil
}

func normalizeAll(items [][]byte) []domain.Post {
	posts := make([]domain.Post, 0, len(items))
	for _, item := range items {
		if post, ok := NormalizeMedia(item); ok {
			posts = append(posts, post)
		}
	}
	return posts
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func safeClose(closer io.Closer, log logger.Logger) {
	if err := closer.Close(); err != nil {
		log.Error("Error closing response body", "error", err)
	}
}
