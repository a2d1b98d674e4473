package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programandoparacristo/plataforma/internal/modules/newsletter/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/newsletter/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
	"github.com/programandoparacristo/plataforma/pkg/webhook"
)

func newNewsletterService() (NewsletterService, repository.NewsletterRepository) {
	repo := repository.NewNewsletterRepository(kvstore.NewMemoryStore())
	// Empty URL disables the webhook; Subscribe must work without it.
	return NewNewsletterService(repo, webhook.NewClient("")), repo
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc, repo := newNewsletterService()

	sub, err := svc.Subscribe(ctx, dto.SubscribeRequest{
		Email:  "  Maria@Exemplo.COM ",
		Name:   "Maria",
		Source: "landing",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@exemplo.com", sub.Email)
	assert.Equal(t, "active", sub.Status)

	stored, err := repo.FindByEmail(ctx, "maria@exemplo.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "landing", stored.Source)
}

func TestSubscribeTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNewsletterService()

	_, err := svc.Subscribe(ctx, dto.SubscribeRequest{Email: "maria@exemplo.com"})
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, dto.SubscribeRequest{Email: "maria@exemplo.com"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestSubscribeReactivatesKeepingCreatedAt(t *testing.T) {
	ctx := context.Background()
	svc, repo := newNewsletterService()

	first, err := svc.Subscribe(ctx, dto.SubscribeRequest{Email: "maria@exemplo.com"})
	require.NoError(t, err)

	unsubscribed := *first
	unsubscribed.Status = "unsubscribed"
	require.NoError(t, repo.Save(ctx, &unsubscribed))

	second, err := svc.Subscribe(ctx, dto.SubscribeRequest{Email: "maria@exemplo.com"})
	require.NoError(t, err)
	assert.Equal(t, "active", second.Status)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}
