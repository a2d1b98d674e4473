package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/article/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/article/repository"
	gamification "github.com/programandoparacristo/plataforma/internal/modules/gamification/service"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
)

const pageSize = 12

type ArticleService interface {
	Create(ctx context.Context, authorID string, req dto.CreateArticleRequest) (*entity.Article, error)
	// GetBySlug returns a published article and bumps its view counter as a
	// side effect.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	ListPublished(ctx context.Context, filter dto.ArticleFilter) (*dto.ArticleListResponse, error)
	Update(ctx context.Context, requesterID, articleID string, req dto.UpdateArticleRequest) (*entity.Article, error)
	Delete(ctx context.Context, requesterID, articleID string) error
}

type articleService struct {
	repo         repository.ArticleRepository
	users        userRepo.UserRepository
	gamification gamification.GamificationService
	sanitizer    *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepository, users userRepo.UserRepository, gamification gamification.GamificationService) ArticleService {
	return &articleService{
		repo:         repo,
		users:        users,
		gamification: gamification,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

func (s *articleService) Create(ctx context.Context, authorID string, req dto.CreateArticleRequest) (*entity.Article, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	status := entity.ContentStatus(req.Status)
	if req.Status == "" {
		status = entity.StatusDraft
	}
	// Students can only create drafts.
	if author.Role == entity.RoleStudent {
		status = entity.StatusDraft
	}

	now := time.Now().UTC()
	article := &entity.Article{
		ID:         uuid.NewString(),
		Slug:       req.Slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    s.sanitizer.Sanitize(req.Content),
		Category:   req.Category,
		Level:      req.Level,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
		Status:     status,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == entity.StatusPublished {
		article.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	if status == entity.StatusPublished && author.Role.IsStaff() {
		if err := s.gamification.AwardArticlePublish(ctx, author.ID); err != nil {
			return nil, err
		}
	}

	return article, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.Status != entity.StatusPublished {
		return nil, apperror.NotFound("Artigo não encontrado")
	}

	// Non-atomic read-modify-write; lost increments under concurrency are
	// acceptable at this scale.
	article.Views++
	if err := s.repo.Save(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) ListPublished(ctx context.Context, filter dto.ArticleFilter) (*dto.ArticleListResponse, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]entity.Article, 0, len(all))
	for _, a := range all {
		if a.Status == entity.StatusPublished && matches(&a, filter) {
			articles = append(articles, a)
		}
	}

	sort.Slice(articles, func(i, j int) bool {
		return publishedAt(&articles[i]).After(publishedAt(&articles[j]))
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}
	total := len(articles)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := min(start+pageSize, total)

	return &dto.ArticleListResponse{
		Articles: articles[start:end],
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func publishedAt(a *entity.Article) time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	return a.CreatedAt
}

func matches(a *entity.Article, filter dto.ArticleFilter) bool {
	if filter.Category != "" && filter.Category != "todos" && a.Category != filter.Category {
		return false
	}
	if filter.Level != "" && a.Level != filter.Level {
		return false
	}
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Excerpt), search) &&
			!tagsContain(a.Tags, search) {
			return false
		}
	}
	return true
}

func tagsContain(tags []string, search string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func (s *articleService) Update(ctx context.Context, requesterID, articleID string, req dto.UpdateArticleRequest) (*entity.Article, error) {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	article, err := s.repo.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	isAdmin := requester.Role == entity.RoleAdmin
	isOwner := article.AuthorID == requesterID
	if !isAdmin && !isOwner {
		return nil, apperror.Forbidden("Sem permissão")
	}

	// A student can never cause a publish transition.
	if req.Status != nil && requester.Role == entity.RoleStudent && *req.Status == string(entity.StatusPublished) {
		draft := string(entity.StatusDraft)
		req.Status = &draft
	}

	wasPublished := article.Status == entity.StatusPublished

	if req.Slug != nil && *req.Slug != article.Slug {
		if err := s.repo.RepointSlug(ctx, article.Slug, *req.Slug, article.ID); err != nil {
			return nil, err
		}
		article.Slug = *req.Slug
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		article.Content = s.sanitizer.Sanitize(*req.Content)
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Level != nil {
		article.Level = *req.Level
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}
	if req.CoverImage != nil {
		article.CoverImage = *req.CoverImage
	}
	if req.Status != nil {
		article.Status = entity.ContentStatus(*req.Status)
	}
	article.UpdatedAt = time.Now().UTC()

	// First transition into published stamps publishedAt and fires the
	// one-time award; the guard is the previous status, not a marker.
	publishing := !wasPublished && article.Status == entity.StatusPublished
	if publishing && article.PublishedAt == nil {
		now := article.UpdatedAt
		article.PublishedAt = &now
	}

	if err := s.repo.Save(ctx, article); err != nil {
		return nil, err
	}

	if publishing {
		author, err := s.users.FindByID(ctx, article.AuthorID)
		if err == nil && author.Role.IsStaff() {
			if err := s.gamification.AwardArticlePublish(ctx, author.ID); err != nil {
				return nil, err
			}
		}
	}

	return article, nil
}

func (s *articleService) Delete(ctx context.Context, requesterID, articleID string) error {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if requester.Role != entity.RoleAdmin {
		return apperror.Forbidden("Sem permissão")
	}

	article, err := s.repo.FindByID(ctx, articleID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, article)
}
