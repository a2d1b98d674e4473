package dto

import "github.com/programandoparacristo/plataforma/internal/entity"

type CreateArticleRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Slug       string   `json:"slug" binding:"required,max=200"`
	Excerpt    string   `json:"excerpt" binding:"max=500"`
	Content    string   `json:"content" binding:"required"`
	Category   string   `json:"category"`
	Level      string   `json:"level"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"coverImage"`
	Status     string   `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateArticleRequest struct {
	Title      *string   `json:"title" binding:"omitempty,max=200"`
	Slug       *string   `json:"slug" binding:"omitempty,max=200"`
	Excerpt    *string   `json:"excerpt" binding:"omitempty,max=500"`
	Content    *string   `json:"content"`
	Category   *string   `json:"category"`
	Level      *string   `json:"level"`
	Tags       *[]string `json:"tags"`
	CoverImage *string   `json:"coverImage"`
	Status     *string   `json:"status" binding:"omitempty,oneof=draft published"`
}

type ArticleFilter struct {
	Category string `form:"category"`
	Level    string `form:"level"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ArticleListResponse struct {
	Articles   []entity.Article `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}
