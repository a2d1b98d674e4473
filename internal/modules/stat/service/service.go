package service

import (
	"context"
	"sort"

	"github.com/programandoparacristo/plataforma/internal/entity"
	articleRepo "github.com/programandoparacristo/plataforma/internal/modules/article/repository"
	challengeRepo "github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	engagementRepo "github.com/programandoparacristo/plataforma/internal/modules/engagement/repository"
	gamification "github.com/programandoparacristo/plataforma/internal/modules/gamification/service"
	newsletterRepo "github.com/programandoparacristo/plataforma/internal/modules/newsletter/repository"
	"github.com/programandoparacristo/plataforma/internal/modules/stat/dto"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
)

type StatService interface {
	Dashboard(ctx context.Context, userID string) (*dto.DashboardStats, error)
	// AdminStats recomputes every aggregate from full namespace scans. The
	// store holds no counters beyond the per-record ones, so this is O(n)
	// over the dataset on every call.
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
	ListUsers(ctx context.Context) ([]dto.AdminUser, error)
}

type statService struct {
	users       userRepo.UserRepository
	articles    articleRepo.ArticleRepository
	challenges  challengeRepo.ChallengeRepository
	engagement  engagementRepo.EngagementRepository
	subscribers newsletterRepo.NewsletterRepository
}

func NewStatService(
	users userRepo.UserRepository,
	articles articleRepo.ArticleRepository,
	challenges challengeRepo.ChallengeRepository,
	engagement engagementRepo.EngagementRepository,
	subscribers newsletterRepo.NewsletterRepository,
) StatService {
	return &statService{
		users:       users,
		articles:    articles,
		challenges:  challenges,
		engagement:  engagement,
		subscribers: subscribers,
	}
}

func (s *statService) Dashboard(ctx context.Context, userID string) (*dto.DashboardStats, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	g := user.Gamification
	achievements := g.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	return &dto.DashboardStats{
		Points:              g.Points,
		Level:               g.Level,
		Rank:                g.Rank,
		NextRank:            gamification.Progress(g.Points),
		CompletedChallenges: g.CompletedChallenges,
		ArticlesPublished:   g.ArticlesPublished,
		ArticlesRead:        g.ArticlesRead,
		CommentsApproved:    g.CommentsApproved,
		LikesReceived:       g.LikesReceived,
		Streak:              g.Streak,
		Achievements:        achievements,
	}, nil
}

func (s *statService) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	stats := &dto.AdminStats{UsersByRole: map[string]int{}}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalUsers = len(users)
	for _, u := range users {
		stats.UsersByRole[string(u.Role)]++
	}

	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalArticles = len(articles)
	for _, a := range articles {
		if a.Status == entity.StatusPublished {
			stats.PublishedArticles++
		}
		stats.TotalViews += a.Views
		stats.TotalLikes += a.Likes
	}

	challenges, err := s.challenges.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalChallenges = len(challenges)
	for _, c := range challenges {
		if c.Status == entity.StatusPublished {
			stats.PublishedChallenges++
		}
		stats.TotalViews += c.Views
		stats.TotalLikes += c.Likes
	}

	comments, err := s.engagement.ListAllComments(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalComments = len(comments)
	for _, c := range comments {
		if c.Status == entity.CommentPending {
			stats.PendingComments++
		}
	}

	subs, err := s.subscribers.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Subscribers = len(subs)

	return stats, nil
}

func (s *statService) ListUsers(ctx context.Context) ([]dto.AdminUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	out := make([]dto.AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, dto.AdminUser{
			ID:          u.ID,
			Email:       u.Email,
			Name:        u.Name,
			Role:        u.Role,
			Status:      u.Status,
			Points:      u.Gamification.Points,
			Level:       u.Gamification.Level,
			Rank:        u.Gamification.Rank,
			CreatedAt:   u.CreatedAt,
			LastLoginAt: u.LastLoginAt,
		})
	}
	return out, nil
}
