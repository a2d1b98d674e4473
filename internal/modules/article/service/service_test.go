package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/article/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/article/repository"
	challengeRepo "github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	gamificationRepo "github.com/programandoparacristo/plataforma/internal/modules/gamification/repository"
	gamification "github.com/programandoparacristo/plataforma/internal/modules/gamification/service"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type articleFixture struct {
	users userRepo.UserRepository
	repo  repository.ArticleRepository
	svc   ArticleService
}

func newArticleFixture(t *testing.T) *articleFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	users := userRepo.NewUserRepository(store)
	articles := repository.NewArticleRepository(store)
	challenges := challengeRepo.NewChallengeRepository(store)
	markers := gamificationRepo.NewMarkerRepository(store)
	gamificationSvc := gamification.NewGamificationService(markers, users, challenges)
	return &articleFixture{
		users: users,
		repo:  articles,
		svc:   NewArticleService(articles, users, gamificationSvc),
	}
}

func (f *articleFixture) seedUser(t *testing.T, id string, role entity.Role) {
	t.Helper()
	user := &entity.User{
		ID:    id,
		Email: id + "@exemplo.com",
		Name:  "Usuário " + id,
		Role:  role,
		Gamification: entity.Gamification{
			Level: 1,
			Rank:  "Madeira",
		},
	}
	require.NoError(t, f.users.Create(context.Background(), user, "hash"))
}

func TestCreateArticleStudentForcedToDraft(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "aluno", entity.RoleStudent)

	article, err := f.svc.Create(ctx, "aluno", dto.CreateArticleRequest{
		Title:   "Meu primeiro artigo",
		Slug:    "meu-primeiro-artigo",
		Content: "<p>conteúdo</p>",
		Status:  "published",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)

	user, err := f.users.FindByID(ctx, "aluno")
	require.NoError(t, err)
	assert.Zero(t, user.Gamification.Points)
}

func TestCreateArticlePublishedAwardsAuthor(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	article, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Artigo publicado",
		Slug:    "artigo-publicado",
		Content: "conteúdo",
		Status:  "published",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPublished, article.Status)
	require.NotNil(t, article.PublishedAt)

	user, err := f.users.FindByID(ctx, "prof")
	require.NoError(t, err)
	assert.Equal(t, gamification.PointsArticlePublish, user.Gamification.Points)
	assert.Equal(t, 1, user.Gamification.ArticlesPublished)
}

func TestCreateArticleSlugConflict(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	_, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Primeiro",
		Slug:    "mesmo-slug",
		Content: "a",
	})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Segundo",
		Slug:    "mesmo-slug",
		Content: "b",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUpdateArticleFirstPublishAwardsOnce(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	article, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Rascunho",
		Slug:    "rascunho",
		Content: "conteúdo",
	})
	require.NoError(t, err)
	require.Equal(t, entity.StatusDraft, article.Status)

	published := "published"
	updated, err := f.svc.Update(ctx, "prof", article.ID, dto.UpdateArticleRequest{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)
	firstPublishedAt := *updated.PublishedAt

	// A second update of an already-published article must not re-award nor
	// restamp publishedAt.
	title := "Rascunho revisado"
	updated, err = f.svc.Update(ctx, "prof", article.ID, dto.UpdateArticleRequest{Title: &title, Status: &published})
	require.NoError(t, err)
	assert.Equal(t, firstPublishedAt, *updated.PublishedAt)

	user, err := f.users.FindByID(ctx, "prof")
	require.NoError(t, err)
	assert.Equal(t, gamification.PointsArticlePublish, user.Gamification.Points)
	assert.Equal(t, 1, user.Gamification.ArticlesPublished)
}

func TestUpdateArticleStudentCannotPublish(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "aluno", entity.RoleStudent)

	article, err := f.svc.Create(ctx, "aluno", dto.CreateArticleRequest{
		Title:   "Rascunho do aluno",
		Slug:    "rascunho-do-aluno",
		Content: "conteúdo",
	})
	require.NoError(t, err)

	published := "published"
	updated, err := f.svc.Update(ctx, "aluno", article.ID, dto.UpdateArticleRequest{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, updated.Status)
}

func TestUpdateArticleForbiddenForNonOwner(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)
	f.seedUser(t, "outro", entity.RoleTeacher)

	article, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Do prof",
		Slug:    "do-prof",
		Content: "conteúdo",
	})
	require.NoError(t, err)

	title := "invadido"
	_, err = f.svc.Update(ctx, "outro", article.ID, dto.UpdateArticleRequest{Title: &title})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateArticleRepointsSlug(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	article, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Artigo",
		Slug:    "slug-antigo",
		Content: "conteúdo",
		Status:  "published",
	})
	require.NoError(t, err)

	newSlug := "slug-novo"
	_, err = f.svc.Update(ctx, "prof", article.ID, dto.UpdateArticleRequest{Slug: &newSlug})
	require.NoError(t, err)

	found, err := f.svc.GetBySlug(ctx, "slug-novo")
	require.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)

	_, err = f.svc.GetBySlug(ctx, "slug-antigo")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetBySlugHidesDraftsAndCountsViews(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	_, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Rascunho",
		Slug:    "rascunho-oculto",
		Content: "conteúdo",
	})
	require.NoError(t, err)

	_, err = f.svc.GetBySlug(ctx, "rascunho-oculto")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	published, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Publicado",
		Slug:    "publicado",
		Content: "conteúdo",
		Status:  "published",
	})
	require.NoError(t, err)

	got, err := f.svc.GetBySlug(ctx, "publicado")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)

	got, err = f.svc.GetBySlug(ctx, "publicado")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)
	assert.Equal(t, published.ID, got.ID)
}

func TestListPublishedFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)

	for _, a := range []dto.CreateArticleRequest{
		{Title: "Go para iniciantes", Slug: "go-iniciantes", Content: "x", Category: "backend", Status: "published"},
		{Title: "React na prática", Slug: "react-pratica", Content: "x", Category: "frontend", Status: "published"},
		{Title: "Rascunho invisível", Slug: "rascunho-invisivel", Content: "x", Category: "backend"},
	} {
		_, err := f.svc.Create(ctx, "prof", a)
		require.NoError(t, err)
	}

	result, err := f.svc.ListPublished(ctx, dto.ArticleFilter{Category: "backend"})
	require.NoError(t, err)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "go-iniciantes", result.Articles[0].Slug)

	result, err = f.svc.ListPublished(ctx, dto.ArticleFilter{Category: "todos", Search: "react"})
	require.NoError(t, err)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "react-pratica", result.Articles[0].Slug)

	result, err = f.svc.ListPublished(ctx, dto.ArticleFilter{})
	require.NoError(t, err)
	assert.Len(t, result.Articles, 2)
	assert.Equal(t, 2, result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.TotalPages)
}

func TestDeleteArticleAdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)
	f.seedUser(t, "prof", entity.RoleTeacher)
	f.seedUser(t, "admin", entity.RoleAdmin)

	article, err := f.svc.Create(ctx, "prof", dto.CreateArticleRequest{
		Title:   "Para apagar",
		Slug:    "para-apagar",
		Content: "conteúdo",
		Status:  "published",
	})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, "prof", article.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, "admin", article.ID))

	_, err = f.svc.GetBySlug(ctx, "para-apagar")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
