package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/programandoparacristo/plataforma/internal/entity"
	articleRepo "github.com/programandoparacristo/plataforma/internal/modules/article/repository"
	challengeRepo "github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	"github.com/programandoparacristo/plataforma/internal/modules/engagement/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/engagement/repository"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
)

const minCommentLength = 10

type EngagementService interface {
	// ToggleLike flips the (content, user) like and keeps the parent's
	// counter in lockstep. Missing content is a hard NotFound.
	ToggleLike(ctx context.Context, userID, contentType, contentID string) (*dto.ToggleLikeResponse, error)
	CheckLike(ctx context.Context, userID, contentType, contentID string) (bool, error)
	CreateComment(ctx context.Context, userID string, req dto.CreateCommentRequest) (*entity.Comment, error)
	ListApprovedComments(ctx context.Context, contentType, contentID string) ([]entity.Comment, error)
	ListPendingComments(ctx context.Context) ([]entity.Comment, error)
	ModerateComment(ctx context.Context, adminID, contentType, contentID, commentID, action string) (*entity.Comment, error)
}

type engagementService struct {
	repo       repository.EngagementRepository
	articles   articleRepo.ArticleRepository
	challenges challengeRepo.ChallengeRepository
	users      userRepo.UserRepository
	sanitizer  *bluemonday.Policy
}

func NewEngagementService(repo repository.EngagementRepository, articles articleRepo.ArticleRepository, challenges challengeRepo.ChallengeRepository, users userRepo.UserRepository) EngagementService {
	return &engagementService{
		repo:       repo,
		articles:   articles,
		challenges: challenges,
		users:      users,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// adjustLikes applies a counter delta to the parent content record,
// flooring at zero, and returns the new value.
func (s *engagementService) adjustLikes(ctx context.Context, contentType, contentID string, delta int) (int, error) {
	switch contentType {
	case entity.ContentTypeArticle:
		article, err := s.articles.FindByID(ctx, contentID)
		if err != nil {
			return 0, err
		}
		article.Likes = max(article.Likes+delta, 0)
		if err := s.articles.Save(ctx, article); err != nil {
			return 0, err
		}
		return article.Likes, nil
	case entity.ContentTypeChallenge:
		challenge, err := s.challenges.FindByID(ctx, contentID)
		if err != nil {
			return 0, err
		}
		challenge.Likes = max(challenge.Likes+delta, 0)
		if err := s.challenges.Save(ctx, challenge); err != nil {
			return 0, err
		}
		return challenge.Likes, nil
	}
	return 0, apperror.InvalidInput("Tipo de conteúdo inválido")
}

func (s *engagementService) contentExists(ctx context.Context, contentType, contentID string) (bool, error) {
	var err error
	switch contentType {
	case entity.ContentTypeArticle:
		_, err = s.articles.FindByID(ctx, contentID)
	case entity.ContentTypeChallenge:
		_, err = s.challenges.FindByID(ctx, contentID)
	default:
		return false, apperror.InvalidInput("Tipo de conteúdo inválido")
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *engagementService) ToggleLike(ctx context.Context, userID, contentType, contentID string) (*dto.ToggleLikeResponse, error) {
	exists, err := s.contentExists(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("Conteúdo não encontrado")
	}

	liked, err := s.repo.HasLike(ctx, contentType, contentID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.repo.DeleteLike(ctx, contentType, contentID, userID); err != nil {
			return nil, err
		}
		likes, err := s.adjustLikes(ctx, contentType, contentID, -1)
		if err != nil {
			return nil, err
		}
		return &dto.ToggleLikeResponse{Liked: false, Likes: likes}, nil
	}

	like := &entity.Like{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.SaveLike(ctx, like); err != nil {
		return nil, err
	}
	likes, err := s.adjustLikes(ctx, contentType, contentID, 1)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleLikeResponse{Liked: true, Likes: likes}, nil
}

func (s *engagementService) CheckLike(ctx context.Context, userID, contentType, contentID string) (bool, error) {
	return s.repo.HasLike(ctx, contentType, contentID, userID)
}

func (s *engagementService) CreateComment(ctx context.Context, userID string, req dto.CreateCommentRequest) (*entity.Comment, error) {
	if len(strings.TrimSpace(req.Content)) < minCommentLength {
		return nil, apperror.InvalidInput("Comentário muito curto (mínimo 10 caracteres)")
	}

	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &entity.Comment{
		ID:           uuid.NewString(),
		ContentType:  req.ContentType,
		ContentID:    req.ContentID,
		Content:      s.sanitizer.Sanitize(req.Content),
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Status:       entity.CommentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.SaveComment(ctx, comment); err != nil {
		return nil, err
	}

	// The counter includes pending comments; it is bumped before moderation
	// on purpose.
	if err := s.incrementCommentCount(ctx, req.ContentType, req.ContentID); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *engagementService) incrementCommentCount(ctx context.Context, contentType, contentID string) error {
	switch contentType {
	case entity.ContentTypeArticle:
		article, err := s.articles.FindByID(ctx, contentID)
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		article.CommentsCount++
		return s.articles.Save(ctx, article)
	case entity.ContentTypeChallenge:
		challenge, err := s.challenges.FindByID(ctx, contentID)
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		challenge.CommentsCount++
		return s.challenges.Save(ctx, challenge)
	}
	return nil
}

func (s *engagementService) ListApprovedComments(ctx context.Context, contentType, contentID string) ([]entity.Comment, error) {
	all, err := s.repo.ListComments(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	approved := make([]entity.Comment, 0, len(all))
	for _, c := range all {
		if c.Status == entity.CommentApproved {
			approved = append(approved, c)
		}
	}
	sortNewestFirst(approved)
	return approved, nil
}

func (s *engagementService) ListPendingComments(ctx context.Context) ([]entity.Comment, error) {
	all, err := s.repo.ListAllComments(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]entity.Comment, 0, len(all))
	for _, c := range all {
		if c.Status == entity.CommentPending {
			pending = append(pending, c)
		}
	}
	sortNewestFirst(pending)
	return pending, nil
}

func sortNewestFirst(comments []entity.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}

func (s *engagementService) ModerateComment(ctx context.Context, adminID, contentType, contentID, commentID, action string) (*entity.Comment, error) {
	comment, err := s.repo.FindComment(ctx, contentType, contentID, commentID)
	if err != nil {
		return nil, err
	}

	// Re-moderating an already-moderated comment overwrites the previous
	// decision; the transition is idempotent, not guarded.
	if action == "approve" {
		comment.Status = entity.CommentApproved
	} else {
		comment.Status = entity.CommentRejected
	}

	now := time.Now().UTC()
	comment.ModeratedBy = &adminID
	comment.ModeratedAt = &now
	comment.UpdatedAt = now

	if err := s.repo.SaveComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
