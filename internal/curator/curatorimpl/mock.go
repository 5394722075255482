package curatorimpl

import (
	"fmt"

	"github.com/orgball2608/insta-repost-curator/internal/domain"
)

const (
	mockMaxLikes    = 2000
	mockMaxComments = 300
)

// mockPosts builds placeholder posts for a tag whose live fetch failed.
// The reason only goes to the log.
func (c *CuratorImpl) mockPosts(tag, reason string, count int) []domain.Post {
	c.logger.Warn("Falling back to mock data", "tag", tag, "reason", reason)

	stamp := c.now().UnixNano()
	posts := make([]domain.Post, 0, count)
	for i := 0; i < count; i++ {
		likes := c.intn(mockMaxLikes)
		comments := c.intn(mockMaxComments)
		shortcode := fmt.Sprintf("mock_%d", i)

		posts = append(posts, domain.Post{
			ID:              fmt.Sprintf("%s_mock_%d_%d", tag, i, stamp),
			Shortcode:       shortcode,
			URL:             fmt.Sprintf("https://www.instagram.com/p/%s/", shortcode),
			AuthorUsername:  fmt.Sprintf("mock_user_%d", i),
			Caption:         fmt.Sprintf("This is a mock post for #%s. The live API call failed.", tag),
			DisplayURL:      fmt.Sprintf("/placeholder.svg?width=500&height=500&query=%s+%d", tag, i),
			IsVideo:         i%2 == 0,
			LikesCount:      likes,
			CommentsCount:   comments,
			EngagementScore: domain.EngagementScore(likes, comments),
		})
	}
	return posts
}
