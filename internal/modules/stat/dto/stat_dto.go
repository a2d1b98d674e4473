package dto

import (
	"time"

	"github.com/programandoparacristo/plataforma/internal/entity"
	gamification "github.com/programandoparacristo/plataforma/internal/modules/gamification/service"
)

// DashboardStats is the signed-in user's own progress view.
type DashboardStats struct {
	Points              int                       `json:"points"`
	Level               int                       `json:"level"`
	Rank                string                    `json:"rank"`
	NextRank            gamification.RankProgress `json:"nextRank"`
	CompletedChallenges int                       `json:"completedChallenges"`
	ArticlesPublished   int                       `json:"articlesPublished"`
	ArticlesRead        int                       `json:"articlesRead"`
	CommentsApproved    int                       `json:"commentsApproved"`
	LikesReceived       int                       `json:"likesReceived"`
	Streak              int                       `json:"streak"`
	Achievements        []string                  `json:"achievements"`
}

// AdminStats aggregates the whole platform for the admin panel. Every
// field is recomputed from a full namespace scan on each request.
type AdminStats struct {
	TotalUsers          int            `json:"totalUsers"`
	UsersByRole         map[string]int `json:"usersByRole"`
	TotalArticles       int            `json:"totalArticles"`
	PublishedArticles   int            `json:"publishedArticles"`
	TotalChallenges     int            `json:"totalChallenges"`
	PublishedChallenges int            `json:"publishedChallenges"`
	TotalViews          int            `json:"totalViews"`
	TotalLikes          int            `json:"totalLikes"`
	TotalComments       int            `json:"totalComments"`
	PendingComments     int            `json:"pendingComments"`
	Subscribers         int            `json:"subscribers"`
}

// AdminUser is the roster row shown to admins: account fields plus the
// point total, never the password hash.
type AdminUser struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Role        entity.Role `json:"role"`
	Status      string      `json:"status"`
	Points      int         `json:"points"`
	Level       int         `json:"level"`
	Rank        string      `json:"rank"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastLoginAt time.Time   `json:"lastLoginAt"`
}
