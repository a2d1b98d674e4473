package entity

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may publish content directly.
func (r Role) IsStaff() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// Gamification is the sub-record embedded in User. Level and Rank are
// derived from Points and must be recomputed on every points mutation,
// never set independently.
type Gamification struct {
	Points              int       `json:"points"`
	Level               int       `json:"level"`
	Rank                string    `json:"rank"`
	CompletedChallenges int       `json:"completedChallenges"`
	ArticlesPublished   int       `json:"articlesPublished"`
	ArticlesRead        int       `json:"articlesRead"`
	CommentsApproved    int       `json:"commentsApproved"`
	LikesReceived       int       `json:"likesReceived"`
	Streak              int       `json:"streak"`
	LastActivityDate    time.Time `json:"lastActivityDate"`
	Achievements        []string  `json:"achievements"`
}

type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	Status       string       `json:"status"`
	Avatar       *string      `json:"avatar"`
	Bio          *string      `json:"bio"`
	Username     *string      `json:"username"`
	Gamification Gamification `json:"gamification"`
	LastLoginAt  time.Time    `json:"lastLoginAt"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Credentials is the password material kept under its own key so nothing
// above the auth layer ever loads it alongside the profile.
type Credentials struct {
	UserID       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}
