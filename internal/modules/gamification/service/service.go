package service

import (
	"context"
	"sort"
	"time"

	challengeRepo "github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	"github.com/programandoparacristo/plataforma/internal/modules/gamification/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/gamification/repository"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
)

type GamificationService interface {
	// CompleteChallenge awards level-based points once per (user, challenge);
	// a replay fails with Conflict.
	CompleteChallenge(ctx context.Context, userID, challengeID string) (*dto.CompletionResult, error)
	// ReadArticle awards reading points once per (user, article); a replay
	// reports AlreadyRead without touching points.
	ReadArticle(ctx context.Context, userID, articleID string) (*dto.ReadResult, error)
	// AwardArticlePublish and AwardChallengePublish fire on the first
	// publish transition only; the caller guards with the previous-status
	// check, there is no marker for publishes.
	AwardArticlePublish(ctx context.Context, userID string) error
	AwardChallengePublish(ctx context.Context, userID string) error
	Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
}

type gamificationService struct {
	markers    repository.MarkerRepository
	users      userRepo.UserRepository
	challenges challengeRepo.ChallengeRepository
}

func NewGamificationService(markers repository.MarkerRepository, users userRepo.UserRepository, challenges challengeRepo.ChallengeRepository) GamificationService {
	return &gamificationService{
		markers:    markers,
		users:      users,
		challenges: challenges,
	}
}

// addPoints mutates the gamification sub-record and re-derives rank and
// level in the same step, then persists the user.
func (s *gamificationService) addPoints(ctx context.Context, user *entity.User, points int, mutate func(*entity.Gamification)) error {
	g := &user.Gamification
	g.Points += points
	if mutate != nil {
		mutate(g)
	}
	g.Rank, g.Level = RankAndLevel(g.Points)
	g.LastActivityDate = time.Now().UTC()
	return s.users.Save(ctx, user)
}

func completionPoints(level string) int {
	switch level {
	case entity.LevelIntermediario:
		return PointsChallengeIntermediario
	case entity.LevelAvancado:
		return PointsChallengeAvancado
	default:
		return PointsChallengeBase
	}
}

func (s *gamificationService) CompleteChallenge(ctx context.Context, userID, challengeID string) (*dto.CompletionResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	challenge, err := s.challenges.FindByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	done, err := s.markers.HasCompletion(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, apperror.Conflict("Desafio já completado")
	}

	points := completionPoints(challenge.Level)

	completion := &entity.ChallengeCompletion{
		UserID:       userID,
		ChallengeID:  challengeID,
		PointsEarned: points,
		CompletedAt:  time.Now().UTC(),
	}
	if err := s.markers.SaveCompletion(ctx, completion); err != nil {
		return nil, err
	}

	if err := s.addPoints(ctx, user, points, func(g *entity.Gamification) {
		g.CompletedChallenges++
	}); err != nil {
		return nil, err
	}

	return &dto.CompletionResult{
		Success:      true,
		PointsEarned: points,
		TotalPoints:  user.Gamification.Points,
		NewLevel:     user.Gamification.Level,
		NewRank:      user.Gamification.Rank,
	}, nil
}

func (s *gamificationService) ReadArticle(ctx context.Context, userID, articleID string) (*dto.ReadResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	read, err := s.markers.HasRead(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}
	if read {
		return &dto.ReadResult{AlreadyRead: true, TotalPoints: user.Gamification.Points}, nil
	}

	marker := &entity.ArticleRead{
		UserID:    userID,
		ArticleID: articleID,
		ReadAt:    time.Now().UTC(),
	}
	if err := s.markers.SaveRead(ctx, marker); err != nil {
		return nil, err
	}

	if err := s.addPoints(ctx, user, PointsArticleRead, func(g *entity.Gamification) {
		g.ArticlesRead++
	}); err != nil {
		return nil, err
	}

	return &dto.ReadResult{
		Success:      true,
		PointsEarned: PointsArticleRead,
		TotalPoints:  user.Gamification.Points,
	}, nil
}

func (s *gamificationService) AwardArticlePublish(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.addPoints(ctx, user, PointsArticlePublish, func(g *entity.Gamification) {
		g.ArticlesPublished++
	})
}

func (s *gamificationService) AwardChallengePublish(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.addPoints(ctx, user, PointsChallengePublish, nil)
}

func (s *gamificationService) Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, dto.LeaderboardEntry{
			ID:     u.ID,
			Name:   u.Name,
			Avatar: u.Avatar,
			Role:   string(u.Role),
			Points: u.Gamification.Points,
			Level:  u.Gamification.Level,
			Rank:   u.Gamification.Rank,
		})
	}

	// Ties break by user id ascending so the ordering is deterministic.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].ID < entries[j].ID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
