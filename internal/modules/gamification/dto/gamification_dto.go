package dto

type CompleteChallengeInput struct {
	ChallengeID string `json:"challengeId" binding:"required"`
}

type ReadArticleInput struct {
	ArticleID string `json:"articleId" binding:"required"`
}

type CompletionResult struct {
	Success      bool   `json:"success"`
	PointsEarned int    `json:"pointsEarned"`
	TotalPoints  int    `json:"totalPoints"`
	NewLevel     int    `json:"newLevel"`
	NewRank      string `json:"newRank"`
}

// ReadResult reports AlreadyRead instead of failing when the same article
// is read twice; re-reading is a no-op, not an error.
type ReadResult struct {
	Success      bool `json:"success"`
	AlreadyRead  bool `json:"alreadyRead"`
	PointsEarned int  `json:"pointsEarned"`
	TotalPoints  int  `json:"totalPoints"`
}

type LeaderboardEntry struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
	Role   string  `json:"role"`
	Points int     `json:"points"`
	Level  int     `json:"level"`
	Rank   string  `json:"rank"`
}
