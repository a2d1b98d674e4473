package dto

type CreateChallengeRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description" binding:"required"`
	Level        string   `json:"level" binding:"required,oneof=iniciante básico intermediário avançado"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl"`
	CodeURL      string   `json:"codeUrl"`
	Status       string   `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateChallengeRequest struct {
	Title        *string   `json:"title" binding:"omitempty,max=200"`
	Description  *string   `json:"description"`
	Level        *string   `json:"level" binding:"omitempty,oneof=iniciante básico intermediário avançado"`
	Technologies *[]string `json:"technologies"`
	DemoURL      *string   `json:"demoUrl"`
	CodeURL      *string   `json:"codeUrl"`
	Status       *string   `json:"status" binding:"omitempty,oneof=draft published"`
}

// ChallengeFilter has no pagination; the challenge listing returns every
// match, unlike articles.
type ChallengeFilter struct {
	Level      string `form:"level"`
	Technology string `form:"technology"`
}
