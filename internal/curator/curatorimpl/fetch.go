package curatorimpl

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/panjf2000/ants/v2"
)

const (
	demoTag = "demo"

	msgNoHashtags = "Please provide at least one hashtag."
	msgNoAPIKey   = "⚠️ HikerAPI key not found. Please configure your API key for live results."
	msgPartial    = "⚠️ Some API requests failed; showing mix of real and mock data. Check server logs for details. Found %s posts."
	msgSuccess    = "✅ Successfully fetched %s unique posts from HikerAPI."
)

type tagResult struct {
	posts    []domain.Post
	fallback bool
}

// ParseHashtags splits a comma separated list into tags. Whitespace and a leading '#'
// are removed, empty entries and repeats are dropped, and input order is kept.
func ParseHashtags(csv string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, raw := range strings.Split(csv, ",") {
		tag := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "#"))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func (c *CuratorImpl) FetchAndScore(ctx context.Context, hashtags string) domain.FetchResult {
	if hashtags == "" {
		return domain.FetchResult{Success: false, Message: msgNoHashtags, Posts: []domain.Post{}}
	}

	// Without a key the demo set is returned whatever tags were asked for.
	if !c.apiKeyConfigured {
		posts := c.mockPosts(demoTag, "API key not configured", c.mockCount)
		sortByEngagement(posts)
		return domain.FetchResult{Success: true, Message: msgNoAPIKey, Posts: posts}
	}

	tags := ParseHashtags(hashtags)
	if len(tags) == 0 {
		return domain.FetchResult{Success: false, Message: msgNoHashtags, Posts: []domain.Post{}}
	}

	results := c.fetchTags(ctx, tags)

	posts := make([]domain.Post, 0)
	seen := make(map[string]struct{})
	fallback := false
	for _, res := range results {
		fallback = fallback || res.fallback
		for _, post := range res.posts {
			if _, ok := seen[post.ID]; ok {
				continue
			}
			seen[post.ID] = struct{}{}
			post.EngagementScore = domain.EngagementScore(post.LikesCount, post.CommentsCount)
			posts = append(posts, post)
		}
	}

	sortByEngagement(posts)

	count := strconv.Itoa(len(posts))
	message := fmt.Sprintf(msgSuccess, count)
	if fallback {
		message = fmt.Sprintf(msgPartial, count)
	}

	c.logger.Info("Hashtag fetch finished", "tags", len(tags), "posts", len(posts), "fallback", fallback)
	return domain.FetchResult{Success: true, Message: message, Posts: posts}
}

// fetchTags runs one fetch per tag on a bounded pool. Results are indexed by tag
// position so that merging stays deterministic whatever order fetches complete in.
func (c *CuratorImpl) fetchTags(ctx context.Context, tags []string) []tagResult {
	results := make([]tagResult, len(tags))

	pool, err := ants.NewPool(min(c.concurrency, len(tags)), ants.WithPreAlloc(true))
	if err != nil {
		c.logger.Error("Failed to create worker pool, fetching sequentially", "error", err)
		for i, tag := range tags {
			results[i] = c.fetchTag(ctx, tag)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, tag := range tags {
		wg.Add(1)
		idx, tagToFetch := i, tag

		err := pool.Submit(func() {
			defer wg.Done()
			results[idx] = c.fetchTag(ctx, tagToFetch)
		})
		if err != nil {
			c.logger.Error("Failed to submit fetch to pool", "tag", tagToFetch, "error", err)
			results[idx] = c.fetchTag(ctx, tagToFetch)
			wg.Done()
		}
	}

	wg.Wait()
	return results
}

// fetchTag never fails; any error or panic becomes a mock fallback for the tag.
func (c *CuratorImpl) fetchTag(ctx context.Context, tag string) (res tagResult) {
	defer func() {
		if r := recover(); r != nil {
			res = tagResult{
				posts:    c.mockPosts(tag, fmt.Sprintf("panic while processing tag: %v", r), c.mockCount),
				fallback: true,
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		return tagResult{posts: c.mockPosts(tag, err.Error(), c.mockCount), fallback: true}
	}

	posts, err := c.instagram.RecentHashtagMedias(ctx, tag)
	if err != nil {
		return tagResult{posts: c.mockPosts(tag, err.Error(), c.mockCount), fallback: true}
	}
	return tagResult{posts: posts}
}

func sortByEngagement(posts []domain.Post) {
	slices.SortStableFunc(posts, func(a, b domain.Post) int {
		return cmp.Compare(b.EngagementScore, a.EngagementScore)
	})
}
