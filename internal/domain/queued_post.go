package domain

import "time"

type QueueStatus string

const (
	StatusQueued     QueueStatus = "queued"
	StatusProcessing QueueStatus = "processing"
	StatusReposted   QueueStatus = "reposted"
	StatusFailed     QueueStatus = "failed"
	StatusIgnored    QueueStatus = "ignored"
)

// QueuedPost is a post selected for reposting by the external workflow.
type QueuedPost struct {
	ID               string      `json:"id"`
	CreatedAt        time.Time   `json:"created_at"`
	InstagramPostID  string      `json:"instagram_post_id"`
	InstagramURL     string      `json:"instagram_url"`
	AuthorUsername   string      `json:"author_username"`
	Caption          string      `json:"caption"`
	MediaURL         string      `json:"media_url"`
	MediaType        string      `json:"media_type"`
	EngagementScore  int         `json:"engagement_score"`
	PostData         []byte      `json:"-"`
	Status           QueueStatus `json:"status"`
	MediaStoragePath *string     `json:"media_storage_path,omitempty"`
}
