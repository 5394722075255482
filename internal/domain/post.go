package domain

// Post is a normalized Instagram media item returned by a hashtag fetch.
// It lives only for the duration of a curation session unless it is queued.
type Post struct {
	ID              string `json:"id"`
	Shortcode       string `json:"shortcode"`
	URL             string `json:"url"`
	AuthorUsername  string `json:"authorUsername"`
	Caption         string `json:"caption"`
	DisplayURL      string `json:"displayUrl"`
	IsVideo         bool   `json:"isVideo"`
	LikesCount      int    `json:"likesCount"`
	CommentsCount   int    `json:"commentsCount"`
	EngagementScore int    `json:"engagementScore"`
}

// EngagementScore ranks a post; comments weigh twice as much as likes.
func EngagementScore(likes, comments int) int {
	return likes + 2*comments
}

// MediaType is the value stored in queued_posts.media_type.
func (p Post) MediaType() string {
	if p.IsVideo {
		return "VIDEO"
	}
	return "IMAGE"
}

// FetchResult is the outcome of a curation fetch.
type FetchResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Posts   []Post `json:"posts"`
}

// ActionResult is the outcome of a user-triggered action such as queueing a post.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
