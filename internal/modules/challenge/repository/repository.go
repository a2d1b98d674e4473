package repository

import (
	"context"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type ChallengeRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Challenge, error)
	Save(ctx context.Context, challenge *entity.Challenge) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Challenge, error)
}

type challengeRepository struct {
	store kvstore.Store
}

func NewChallengeRepository(store kvstore.Store) ChallengeRepository {
	return &challengeRepository{store: store}
}

func (r *challengeRepository) FindByID(ctx context.Context, id string) (*entity.Challenge, error) {
	var challenge entity.Challenge
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.ChallengeKey(id), &challenge)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("Desafio não encontrado")
	}
	return &challenge, nil
}

func (r *challengeRepository) Save(ctx context.Context, challenge *entity.Challenge) error {
	return kvstore.SetJSON(ctx, r.store, kvstore.ChallengeKey(challenge.ID), challenge)
}

func (r *challengeRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, kvstore.ChallengeKey(id))
}

func (r *challengeRepository) List(ctx context.Context) ([]entity.Challenge, error) {
	return kvstore.ListJSON[entity.Challenge](ctx, r.store, kvstore.ChallengePrefix)
}
