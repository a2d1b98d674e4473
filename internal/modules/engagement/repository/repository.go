package repository

import (
	"context"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type EngagementRepository interface {
	HasLike(ctx context.Context, contentType, contentID, userID string) (bool, error)
	SaveLike(ctx context.Context, like *entity.Like) error
	DeleteLike(ctx context.Context, contentType, contentID, userID string) error

	SaveComment(ctx context.Context, comment *entity.Comment) error
	FindComment(ctx context.Context, contentType, contentID, commentID string) (*entity.Comment, error)
	// ListComments returns every comment on one piece of content.
	ListComments(ctx context.Context, contentType, contentID string) ([]entity.Comment, error)
	// ListAllComments scans the whole comments namespace (moderation queue,
	// admin stats).
	ListAllComments(ctx context.Context) ([]entity.Comment, error)
}

type engagementRepository struct {
	store kvstore.Store
}

func NewEngagementRepository(store kvstore.Store) EngagementRepository {
	return &engagementRepository{store: store}
}

func (r *engagementRepository) HasLike(ctx context.Context, contentType, contentID, userID string) (bool, error) {
	raw, err := r.store.Get(ctx, kvstore.LikeKey(contentType, contentID, userID))
	if err != nil {
		return false, err
	}
	return raw != nil, nil
}

func (r *engagementRepository) SaveLike(ctx context.Context, like *entity.Like) error {
	key := kvstore.LikeKey(like.ContentType, like.ContentID, like.UserID)
	return kvstore.SetJSON(ctx, r.store, key, like)
}

func (r *engagementRepository) DeleteLike(ctx context.Context, contentType, contentID, userID string) error {
	return r.store.Delete(ctx, kvstore.LikeKey(contentType, contentID, userID))
}

func (r *engagementRepository) SaveComment(ctx context.Context, comment *entity.Comment) error {
	key := kvstore.CommentKey(comment.ContentType, comment.ContentID, comment.ID)
	return kvstore.SetJSON(ctx, r.store, key, comment)
}

func (r *engagementRepository) FindComment(ctx context.Context, contentType, contentID, commentID string) (*entity.Comment, error) {
	var comment entity.Comment
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.CommentKey(contentType, contentID, commentID), &comment)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("Comentário não encontrado")
	}
	return &comment, nil
}

func (r *engagementRepository) ListComments(ctx context.Context, contentType, contentID string) ([]entity.Comment, error) {
	return kvstore.ListJSON[entity.Comment](ctx, r.store, kvstore.CommentPrefix(contentType, contentID))
}

func (r *engagementRepository) ListAllComments(ctx context.Context) ([]entity.Comment, error) {
	return kvstore.ListJSON[entity.Comment](ctx, r.store, kvstore.CommentsPrefix)
}
