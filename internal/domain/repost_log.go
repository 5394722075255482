package domain

import "time"

const OutcomeSuccess = "success"

// RepostOutcome is what the external workflow reports after a repost attempt.
type RepostOutcome struct {
	QueuedPostID string `json:"queuedPostId"`
	Status       string `json:"status"`
	Details      string `json:"details"`
}

// QueueStatus maps the reported outcome onto the queued post state machine.
// Only the exact value "success" counts as a repost; anything else is a failure.
func (o RepostOutcome) QueueStatus() QueueStatus {
	if o.Status == OutcomeSuccess {
		return StatusReposted
	}
	return StatusFailed
}

// RepostLogEntry is an append-only record of one webhook call.
type RepostLogEntry struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	QueuedPostID    string    `json:"queued_post_id"`
	Status          string    `json:"status"`
	RepostTimestamp time.Time `json:"repost_timestamp"`
	Details         string    `json:"details"`

	// Populated by the log view join.
	AuthorUsername string `json:"author_username,omitempty"`
	InstagramURL   string `json:"instagram_url,omitempty"`
}
