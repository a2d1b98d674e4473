package repository

import (
	"context"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

// MarkerRepository stores the per-(user, content) records that make point
// awards idempotent.
type MarkerRepository interface {
	HasCompletion(ctx context.Context, userID, challengeID string) (bool, error)
	SaveCompletion(ctx context.Context, completion *entity.ChallengeCompletion) error
	HasRead(ctx context.Context, userID, articleID string) (bool, error)
	SaveRead(ctx context.Context, read *entity.ArticleRead) error
}

type markerRepository struct {
	store kvstore.Store
}

func NewMarkerRepository(store kvstore.Store) MarkerRepository {
	return &markerRepository{store: store}
}

func (r *markerRepository) HasCompletion(ctx context.Context, userID, challengeID string) (bool, error) {
	raw, err := r.store.Get(ctx, kvstore.ChallengeCompletionKey(userID, challengeID))
	if err != nil {
		return false, err
	}
	return raw != nil, nil
}

func (r *markerRepository) SaveCompletion(ctx context.Context, completion *entity.ChallengeCompletion) error {
	key := kvstore.ChallengeCompletionKey(completion.UserID, completion.ChallengeID)
	return kvstore.SetJSON(ctx, r.store, key, completion)
}

func (r *markerRepository) HasRead(ctx context.Context, userID, articleID string) (bool, error) {
	raw, err := r.store.Get(ctx, kvstore.ArticleReadKey(userID, articleID))
	if err != nil {
		return false, err
	}
	return raw != nil, nil
}

func (r *markerRepository) SaveRead(ctx context.Context, read *entity.ArticleRead) error {
	return kvstore.SetJSON(ctx, r.store, kvstore.ArticleReadKey(read.UserID, read.ArticleID), read)
}
