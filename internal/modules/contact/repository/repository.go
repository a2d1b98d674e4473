package repository

import (
	"context"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type ContactRepository interface {
	Save(ctx context.Context, msg *entity.ContactMessage) error
	List(ctx context.Context) ([]entity.ContactMessage, error)
}

type contactRepository struct {
	store kvstore.Store
}

func NewContactRepository(store kvstore.Store) ContactRepository {
	return &contactRepository{store: store}
}

func (r *contactRepository) Save(ctx context.Context, msg *entity.ContactMessage) error {
	return kvstore.SetJSON(ctx, r.store, kvstore.ContactKey(msg.ID), msg)
}

func (r *contactRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	return kvstore.ListJSON[entity.ContactMessage](ctx, r.store, kvstore.ContactPrefix)
}
