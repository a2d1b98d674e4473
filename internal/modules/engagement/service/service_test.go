package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programandoparacristo/plataforma/internal/entity"
	articleRepo "github.com/programandoparacristo/plataforma/internal/modules/article/repository"
	challengeRepo "github.com/programandoparacristo/plataforma/internal/modules/challenge/repository"
	"github.com/programandoparacristo/plataforma/internal/modules/engagement/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/engagement/repository"
	userRepo "github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type engagementFixture struct {
	users      userRepo.UserRepository
	articles   articleRepo.ArticleRepository
	challenges challengeRepo.ChallengeRepository
	svc        EngagementService
}

func newEngagementFixture(t *testing.T) *engagementFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	users := userRepo.NewUserRepository(store)
	articles := articleRepo.NewArticleRepository(store)
	challenges := challengeRepo.NewChallengeRepository(store)
	engagement := repository.NewEngagementRepository(store)
	return &engagementFixture{
		users:      users,
		articles:   articles,
		challenges: challenges,
		svc:        NewEngagementService(engagement, articles, challenges, users),
	}
}

func (f *engagementFixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &entity.User{
		ID:    "u1",
		Email: "u1@exemplo.com",
		Name:  "Maria",
		Role:  entity.RoleStudent,
	}, "hash"))

	require.NoError(t, f.articles.Create(ctx, &entity.Article{
		ID:     "a1",
		Slug:   "artigo-um",
		Title:  "Artigo um",
		Status: entity.StatusPublished,
	}))

	require.NoError(t, f.challenges.Save(ctx, &entity.Challenge{
		ID:     "c1",
		Title:  "Desafio um",
		Status: entity.StatusPublished,
	}))
}

func TestToggleLikeRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newEngagementFixture(t)
	f.seed(t)

	result, err := f.svc.ToggleLike(ctx, "u1", entity.ContentTypeArticle, "a1")
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.Likes)

	liked, err := f.svc.CheckLike(ctx, "u1", entity.ContentTypeArticle, "a1")
	require.NoError(t, err)
	assert.True(t, liked)

	result, err = f.svc.ToggleLike(ctx, "u1", entity.ContentTypeArticle, "a1")
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.Likes)

	liked, err = f.svc.CheckLike(ctx, "u1", entity.ContentTypeArticle, "a1")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLikeMissingContent(t *testing.T) {
	f := newEngagementFixture(t)
	f.seed(t)

	_, err := f.svc.ToggleLike(context.Background(), "u1", entity.ContentTypeChallenge, "inexistente")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateCommentTooShort(t *testing.T) {
	f := newEngagementFixture(t)
	f.seed(t)

	_, err := f.svc.CreateComment(context.Background(), "u1", dto.CreateCommentRequest{
		ContentType: entity.ContentTypeArticle,
		ContentID:   "a1",
		Content:     "  nove cars  ", // nine chars after trim
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCommentModerationFlow(t *testing.T) {
	ctx := context.Background()
	f := newEngagementFixture(t)
	f.seed(t)

	comment, err := f.svc.CreateComment(ctx, "u1", dto.CreateCommentRequest{
		ContentType: entity.ContentTypeArticle,
		ContentID:   "a1",
		Content:     "Excelente artigo, aprendi muito!",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CommentPending, comment.Status)
	assert.Equal(t, "Maria", comment.AuthorName)

	// The counter includes pending comments.
	article, err := f.articles.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, article.CommentsCount)

	approved, err := f.svc.ListApprovedComments(ctx, entity.ContentTypeArticle, "a1")
	require.NoError(t, err)
	assert.Empty(t, approved)

	pending, err := f.svc.ListPendingComments(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	moderated, err := f.svc.ModerateComment(ctx, "admin-1", entity.ContentTypeArticle, "a1", comment.ID, "approve")
	require.NoError(t, err)
	assert.Equal(t, entity.CommentApproved, moderated.Status)
	require.NotNil(t, moderated.ModeratedBy)
	assert.Equal(t, "admin-1", *moderated.ModeratedBy)

	approved, err = f.svc.ListApprovedComments(ctx, entity.ContentTypeArticle, "a1")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, comment.ID, approved[0].ID)

	pending, err = f.svc.ListPendingComments(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestModerateCommentOverwritesDecision(t *testing.T) {
	ctx := context.Background()
	f := newEngagementFixture(t)
	f.seed(t)

	comment, err := f.svc.CreateComment(ctx, "u1", dto.CreateCommentRequest{
		ContentType: entity.ContentTypeChallenge,
		ContentID:   "c1",
		Content:     "Esse desafio é muito bom.",
	})
	require.NoError(t, err)

	_, err = f.svc.ModerateComment(ctx, "admin-1", entity.ContentTypeChallenge, "c1", comment.ID, "approve")
	require.NoError(t, err)

	moderated, err := f.svc.ModerateComment(ctx, "admin-2", entity.ContentTypeChallenge, "c1", comment.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, entity.CommentRejected, moderated.Status)
	assert.Equal(t, "admin-2", *moderated.ModeratedBy)
}

func TestModerateUnknownComment(t *testing.T) {
	f := newEngagementFixture(t)
	f.seed(t)

	_, err := f.svc.ModerateComment(context.Background(), "admin-1", entity.ContentTypeArticle, "a1", "nope", "approve")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
