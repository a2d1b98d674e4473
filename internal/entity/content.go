package entity

import "time"

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
)

func (s ContentStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

const (
	ContentTypeArticle   = "article"
	ContentTypeChallenge = "challenge"
)

func ValidContentType(t string) bool {
	return t == ContentTypeArticle || t == ContentTypeChallenge
}

// Challenge difficulty levels; they drive the completion point table.
const (
	LevelIniciante     = "iniciante"
	LevelBasico        = "básico"
	LevelIntermediario = "intermediário"
	LevelAvancado      = "avançado"
)

type Article struct {
	ID            string        `json:"id"`
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content"`
	Category      string        `json:"category"`
	Level         string        `json:"level"`
	Tags          []string      `json:"tags"`
	CoverImage    string        `json:"coverImage,omitempty"`
	Status        ContentStatus `json:"status"`
	AuthorID      string        `json:"authorId"`
	AuthorName    string        `json:"authorName"`
	Views         int           `json:"views"`
	Likes         int           `json:"likes"`
	CommentsCount int           `json:"commentsCount"`
	SharesCount   int           `json:"sharesCount"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	PublishedAt   *time.Time    `json:"publishedAt"`
}

// Challenge has no slug index; it is always addressed by id.
type Challenge struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Level         string        `json:"level"`
	Technologies  []string      `json:"technologies"`
	DemoURL       string        `json:"demoUrl,omitempty"`
	CodeURL       string        `json:"codeUrl,omitempty"`
	Status        ContentStatus `json:"status"`
	AuthorID      string        `json:"authorId"`
	AuthorName    string        `json:"authorName"`
	Views         int           `json:"views"`
	Likes         int           `json:"likes"`
	CommentsCount int           `json:"commentsCount"`
	DemoClicks    int           `json:"demoClicks"`
	CodeClicks    int           `json:"codeClicks"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	PublishedAt   *time.Time    `json:"publishedAt"`
}
