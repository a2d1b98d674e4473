package repository

import (
	"context"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type NewsletterRepository interface {
	// FindByEmail returns nil without error when the email was never
	// subscribed.
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	Save(ctx context.Context, sub *entity.Subscriber) error
	List(ctx context.Context) ([]entity.Subscriber, error)
}

type newsletterRepository struct {
	store kvstore.Store
}

func NewNewsletterRepository(store kvstore.Store) NewsletterRepository {
	return &newsletterRepository{store: store}
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	var sub entity.Subscriber
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.NewsletterKey(email), &sub)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &sub, nil
}

func (r *newsletterRepository) Save(ctx context.Context, sub *entity.Subscriber) error {
	return kvstore.SetJSON(ctx, r.store, kvstore.NewsletterKey(sub.Email), sub)
}

func (r *newsletterRepository) List(ctx context.Context) ([]entity.Subscriber, error) {
	return kvstore.ListJSON[entity.Subscriber](ctx, r.store, kvstore.NewsletterPrefix)
}
