package entity

import "time"

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

type Comment struct {
	ID           string        `json:"id"`
	ContentType  string        `json:"contentType"`
	ContentID    string        `json:"contentId"`
	Content      string        `json:"content"`
	AuthorID     string        `json:"authorId"`
	AuthorName   string        `json:"authorName"`
	AuthorAvatar *string       `json:"authorAvatar"`
	Status       CommentStatus `json:"status"`
	ModeratedBy  *string       `json:"moderatedBy,omitempty"`
	ModeratedAt  *time.Time    `json:"moderatedAt,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Like's existence under its key is the "liked" state; toggling is the
// only mutation.
type Like struct {
	UserID      string    `json:"userId"`
	ContentType string    `json:"contentType"`
	ContentID   string    `json:"contentId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ChallengeCompletion is the idempotence marker that prevents a user from
// being awarded twice for the same challenge.
type ChallengeCompletion struct {
	UserID       string    `json:"userId"`
	ChallengeID  string    `json:"challengeId"`
	PointsEarned int       `json:"pointsEarned"`
	CompletedAt  time.Time `json:"completedAt"`
}

// ArticleRead is the idempotence marker for the article reading reward.
type ArticleRead struct {
	UserID    string    `json:"userId"`
	ArticleID string    `json:"articleId"`
	ReadAt    time.Time `json:"readAt"`
}
