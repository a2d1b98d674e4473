package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/challenge/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	gamificationRepo "github.com/programandoparacristo/plataforma/internal/modules/gamification/repository"
	gamification "github.com/programandoparacristo/plataforma/internal/modules/gamification/service"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type challengeFixture struct {
	users userRepo.UserRepository
	svc   ChallengeService
}

func newChallengeFixture(t *testing.T) *challengeFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	users := userRepo.NewUserRepository(store)
	challenges := repository.NewChallengeRepository(store)
	markers := gamificationRepo.NewMarkerRepository(store)
	gamificationSvc := gamification.NewGamificationService(markers, users, challenges)
	return &challengeFixture{
		users: users,
		svc:   NewChallengeService(challenges, users, gamificationSvc),
	}
}

func (f *challengeFixture) seedUser(t *testing.T, id string, role entity.Role) {
	t.Helper()
	require.NoError(t, f.users.Create(context.Background(), &entity.User{
		ID:    id,
		Email: id + "@exemplo.com",
		Name:  "Usuário " + id,
		Role:  role,
		Gamification: entity.Gamification{
			Level: 1,
			Rank:  "Madeira",
		},
	}, "hash"))
}

func TestCreateChallengeStudentForbidden(t *testing.T) {
	f := newChallengeFixture(t)
	f.seedUser(t, "aluno", entity.RoleStudent)

	_, err := f.svc.Create(context.Background(), "aluno", dto.CreateChallengeRequest{
		Title:       "Desafio proibido",
		Description: "descrição",
		Level:       entity.LevelIniciante,
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCreateChallengePublishedAwardsAuthor(t *testing.T) {
	ctx := context.Background()
	f := newChallengeFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	challenge, err := f.svc.Create(ctx, "prof", dto.CreateChallengeRequest{
		Title:       "API REST em Go",
		Description: "Construa uma API completa",
		Level:       entity.LevelIntermediario,
		Status:      "published",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPublished, challenge.Status)
	require.NotNil(t, challenge.PublishedAt)

	user, err := f.users.FindByID(ctx, "prof")
	require.NoError(t, err)
	assert.Equal(t, gamification.PointsChallengePublish, user.Gamification.Points)
}

func TestUpdateChallengeFirstPublishAwardsOnce(t *testing.T) {
	ctx := context.Background()
	f := newChallengeFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	challenge, err := f.svc.Create(ctx, "prof", dto.CreateChallengeRequest{
		Title:       "Rascunho",
		Description: "descrição",
		Level:       entity.LevelIniciante,
	})
	require.NoError(t, err)

	published := "published"
	_, err = f.svc.Update(ctx, "prof", challenge.ID, dto.UpdateChallengeRequest{Status: &published})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, "prof", challenge.ID, dto.UpdateChallengeRequest{Status: &published})
	require.NoError(t, err)

	user, err := f.users.FindByID(ctx, "prof")
	require.NoError(t, err)
	assert.Equal(t, gamification.PointsChallengePublish, user.Gamification.Points)
}

func TestListPublishedChallengesFilters(t *testing.T) {
	ctx := context.Background()
	f := newChallengeFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	for _, c := range []dto.CreateChallengeRequest{
		{Title: "Go básico", Description: "d", Level: entity.LevelIniciante, Technologies: []string{"go"}, Status: "published"},
		{Title: "React avançado", Description: "d", Level: entity.LevelAvancado, Technologies: []string{"react"}, Status: "published"},
		{Title: "Rascunho", Description: "d", Level: entity.LevelIniciante},
	} {
		_, err := f.svc.Create(ctx, "prof", c)
		require.NoError(t, err)
	}

	all, err := f.svc.ListPublished(ctx, dto.ChallengeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byLevel, err := f.svc.ListPublished(ctx, dto.ChallengeFilter{Level: entity.LevelAvancado})
	require.NoError(t, err)
	require.Len(t, byLevel, 1)
	assert.Equal(t, "React avançado", byLevel[0].Title)

	byTech, err := f.svc.ListPublished(ctx, dto.ChallengeFilter{Technology: "go"})
	require.NoError(t, err)
	require.Len(t, byTech, 1)
	assert.Equal(t, "Go básico", byTech[0].Title)
}

func TestGetChallengeHidesDrafts(t *testing.T) {
	ctx := context.Background()
	f := newChallengeFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	draft, err := f.svc.Create(ctx, "prof", dto.CreateChallengeRequest{
		Title:       "Rascunho",
		Description: "d",
		Level:       entity.LevelIniciante,
	})
	require.NoError(t, err)

	_, err = f.svc.GetByID(ctx, draft.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
