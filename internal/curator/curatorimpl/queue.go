package curatorimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/repositories/queuedpost"
	"github.com/orgball2608/insta-repost-curator/pkg/errors"
)

const (
	defaultExtension   = "jpg"
	maxExtensionLength = 5

	msgQueued        = "Post queued successfully!"
	msgAlreadyQueued = "This post is already queued."
	msgMissingID     = "Post is missing an identifier."
)

func (c *CuratorImpl) QueuePost(ctx context.Context, post domain.Post, storeMediaCopy bool) domain.ActionResult {
	if strings.TrimSpace(post.ID) == "" {
		return failure(errors.CodeInvalidPost, msgMissingID)
	}

	var storagePath *string
	if storeMediaCopy {
		p, err := c.storeMedia(ctx, post)
		if err != nil {
			c.logger.Error("Failed to store media copy", "post_id", post.ID, "error", err)
			return failure(errors.GetCode(err), errors.GetMessage(err))
		}
		storagePath = &p
	}

	payload, err := json.Marshal(post)
	if err != nil {
		c.logger.Error("Failed to encode post payload", "post_id", post.ID, "error", err)
		return failure(errors.CodePersistenceFailed, "Failed to queue post: "+err.Error())
	}

	record := &domain.QueuedPost{
		InstagramPostID:  post.ID,
		InstagramURL:     post.URL,
		AuthorUsername:   post.AuthorUsername,
		Caption:          post.Caption,
		MediaURL:         post.DisplayURL,
		MediaType:        post.MediaType(),
		EngagementScore:  post.EngagementScore,
		PostData:         payload,
		Status:           domain.StatusQueued,
		MediaStoragePath: storagePath,
	}

	if err := c.queuedPosts.Create(ctx, record); err != nil {
		if errors.Is(err, queuedpost.ErrAlreadyExists) {
			c.logger.Info("Post already queued", "post_id", post.ID)
			return failure(errors.CodeAlreadyQueued, msgAlreadyQueued)
		}
		c.logger.Error("Failed to insert queued post", "post_id", post.ID, "error", err)
		return failure(errors.CodePersistenceFailed, "Failed to queue post: "+err.Error())
	}

	c.dashboard.Invalidate()
	c.logger.Info("Post queued", "post_id", post.ID, "queued_post_id", record.ID, "media_copy", storagePath != nil)
	return domain.ActionResult{Success: true, Message: msgQueued}
}

// storeMedia copies the post media into object storage and returns its key.
func (c *CuratorImpl) storeMedia(ctx context.Context, post domain.Post) (string, error) {
	data, contentType, err := c.fetchMedia(ctx, post.DisplayURL)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeMediaFetchFailed, "Failed to fetch media from source: "+err.Error())
	}

	ext := mediaExtension(post.DisplayURL)
	if contentType == "" {
		contentType = mime.TypeByExtension("." + ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := MediaPath(c.storagePrefix, post.AuthorUsername, post.ID, ext)
	if err := c.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeStorageFailed, "Failed to upload media to storage: "+err.Error())
	}

	return key, nil
}

func (c *CuratorImpl) fetchMedia(ctx context.Context, rawURL string) ([]byte, string, error) {
	if c.mediaTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.mediaTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("invalid media url: %w", err)
	}

	resp, err := c.mediaClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if c.mediaMaxBytes > 0 {
		reader = io.LimitReader(resp.Body, c.mediaMaxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read media: %w", err)
	}
	if c.mediaMaxBytes > 0 && int64(len(data)) > c.mediaMaxBytes {
		return nil, "", fmt.Errorf("media exceeds %d bytes", c.mediaMaxBytes)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty media body")
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// mediaExtension returns the lowercase extension of the URL path, or jpg when
// there is none or it does not look like a file extension.
func mediaExtension(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultExtension
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	if ext == "" || len(ext) > maxExtensionLength {
		return defaultExtension
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultExtension
		}
	}
	return ext
}

// MediaPath builds the storage key <prefix>/<author>_<id>.<ext>.
func MediaPath(prefix, author, id, ext string) string {
	name := safeSegment(author) + "_" + safeSegment(id) + "." + ext
	if prefix == "" {
		return name
	}
	return strings.Trim(prefix, "/") + "/" + name
}

func safeSegment(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

func failure(code, message string) domain.ActionResult {
	return domain.ActionResult{Success: false, Message: message, Code: code}
}
