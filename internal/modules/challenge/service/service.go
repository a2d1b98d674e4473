package service

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/challenge/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	gamification "github.com/programandoparacristo/plataforma/internal/modules/gamification/service"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
)

type ChallengeService interface {
	Create(ctx context.Context, authorID string, req dto.CreateChallengeRequest) (*entity.Challenge, error)
	// GetByID returns a published challenge and bumps its view counter.
	GetByID(ctx context.Context, id string) (*entity.Challenge, error)
	ListPublished(ctx context.Context, filter dto.ChallengeFilter) ([]entity.Challenge, error)
	Update(ctx context.Context, requesterID, challengeID string, req dto.UpdateChallengeRequest) (*entity.Challenge, error)
	Delete(ctx context.Context, requesterID, challengeID string) error
}

type challengeService struct {
	repo         repository.ChallengeRepository
	users        userRepo.UserRepository
	gamification gamification.GamificationService
	sanitizer    *bluemonday.Policy
}

func NewChallengeService(repo repository.ChallengeRepository, users userRepo.UserRepository, gamification gamification.GamificationService) ChallengeService {
	return &challengeService{
		repo:         repo,
		users:        users,
		gamification: gamification,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

func (s *challengeService) Create(ctx context.Context, authorID string, req dto.CreateChallengeRequest) (*entity.Challenge, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !author.Role.IsStaff() {
		return nil, apperror.Forbidden("Sem permissão")
	}

	status := entity.ContentStatus(req.Status)
	if req.Status == "" {
		status = entity.StatusDraft
	}

	now := time.Now().UTC()
	challenge := &entity.Challenge{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  s.sanitizer.Sanitize(req.Description),
		Level:        req.Level,
		Technologies: req.Technologies,
		DemoURL:      req.DemoURL,
		CodeURL:      req.CodeURL,
		Status:       status,
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if status == entity.StatusPublished {
		challenge.PublishedAt = &now
	}

	if err := s.repo.Save(ctx, challenge); err != nil {
		return nil, err
	}

	if status == entity.StatusPublished {
		if err := s.gamification.AwardChallengePublish(ctx, author.ID); err != nil {
			return nil, err
		}
	}

	return challenge, nil
}

func (s *challengeService) GetByID(ctx context.Context, id string) (*entity.Challenge, error) {
	challenge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if challenge.Status != entity.StatusPublished {
		return nil, apperror.NotFound("Desafio não encontrado")
	}

	challenge.Views++
	if err := s.repo.Save(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

func (s *challengeService) ListPublished(ctx context.Context, filter dto.ChallengeFilter) ([]entity.Challenge, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	challenges := make([]entity.Challenge, 0, len(all))
	for _, c := range all {
		if c.Status != entity.StatusPublished {
			continue
		}
		if filter.Level != "" && filter.Level != "todos" && c.Level != filter.Level {
			continue
		}
		if filter.Technology != "" && filter.Technology != "todos" &&
			!slices.Contains(c.Technologies, filter.Technology) {
			continue
		}
		challenges = append(challenges, c)
	}

	sort.Slice(challenges, func(i, j int) bool {
		return publishedAt(&challenges[i]).After(publishedAt(&challenges[j]))
	})

	return challenges, nil
}

func publishedAt(c *entity.Challenge) time.Time {
	if c.PublishedAt != nil {
		return *c.PublishedAt
	}
	return c.CreatedAt
}

func (s *challengeService) Update(ctx context.Context, requesterID, challengeID string, req dto.UpdateChallengeRequest) (*entity.Challenge, error) {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !requester.Role.IsStaff() {
		return nil, apperror.Forbidden("Sem permissão")
	}

	challenge, err := s.repo.FindByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	isAdmin := requester.Role == entity.RoleAdmin
	if !isAdmin && challenge.AuthorID != requesterID {
		return nil, apperror.Forbidden("Sem permissão")
	}

	wasPublished := challenge.Status == entity.StatusPublished

	if req.Title != nil {
		challenge.Title = *req.Title
	}
	if req.Description != nil {
		challenge.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Level != nil {
		challenge.Level = *req.Level
	}
	if req.Technologies != nil {
		challenge.Technologies = *req.Technologies
	}
	if req.DemoURL != nil {
		challenge.DemoURL = *req.DemoURL
	}
	if req.CodeURL != nil {
		challenge.CodeURL = *req.CodeURL
	}
	if req.Status != nil {
		challenge.Status = entity.ContentStatus(*req.Status)
	}
	challenge.UpdatedAt = time.Now().UTC()

	publishing := !wasPublished && challenge.Status == entity.StatusPublished
	if publishing && challenge.PublishedAt == nil {
		now := challenge.UpdatedAt
		challenge.PublishedAt = &now
	}

	if err := s.repo.Save(ctx, challenge); err != nil {
		return nil, err
	}

	if publishing {
		author, err := s.users.FindByID(ctx, challenge.AuthorID)
		if err == nil && author.Role.IsStaff() {
			if err := s.gamification.AwardChallengePublish(ctx, author.ID); err != nil {
				return nil, err
			}
		}
	}

	return challenge, nil
}

func (s *challengeService) Delete(ctx context.Context, requesterID, challengeID string) error {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if requester.Role != entity.RoleAdmin {
		return apperror.Forbidden("Sem permissão")
	}

	if _, err := s.repo.FindByID(ctx, challengeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, challengeID)
}
