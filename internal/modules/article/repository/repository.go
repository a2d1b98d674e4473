package repository

import (
	"context"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

type ArticleRepository interface {
	// Create stores the article and its slug index entry; a slug already
	// pointing at another article fails with Conflict.
	Create(ctx context.Context, article *entity.Article) error
	FindByID(ctx context.Context, id string) (*entity.Article, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)
	Save(ctx context.Context, article *entity.Article) error
	// RepointSlug releases oldSlug and points newSlug at the article.
	RepointSlug(ctx context.Context, oldSlug, newSlug, articleID string) error
	// Delete removes the record and its slug index entry.
	Delete(ctx context.Context, article *entity.Article) error
	List(ctx context.Context) ([]entity.Article, error)
}

type articleRepository struct {
	store kvstore.Store
}

func NewArticleRepository(store kvstore.Store) ArticleRepository {
	return &articleRepository{store: store}
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	owner, err := r.store.Get(ctx, kvstore.ArticleSlugKey(article.Slug))
	if err != nil {
		return err
	}
	if owner != nil {
		return apperror.Conflict("Slug já está em uso")
	}

	if err := kvstore.SetJSON(ctx, r.store, kvstore.ArticleKey(article.ID), article); err != nil {
		return err
	}
	// Partial failure here leaves an article without a slug entry; there is
	// no cross-key transaction in the store.
	return r.store.Set(ctx, kvstore.ArticleSlugKey(article.Slug), []byte(article.ID))
}

func (r *articleRepository) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	var article entity.Article
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.ArticleKey(id), &article)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("Artigo não encontrado")
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	id, err := r.store.Get(ctx, kvstore.ArticleSlugKey(slug))
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, apperror.NotFound("Artigo não encontrado")
	}
	return r.FindByID(ctx, string(id))
}

func (r *articleRepository) Save(ctx context.Context, article *entity.Article) error {
	return kvstore.SetJSON(ctx, r.store, kvstore.ArticleKey(article.ID), article)
}

func (r *articleRepository) RepointSlug(ctx context.Context, oldSlug, newSlug, articleID string) error {
	owner, err := r.store.Get(ctx, kvstore.ArticleSlugKey(newSlug))
	if err != nil {
		return err
	}
	if owner != nil && string(owner) != articleID {
		return apperror.Conflict("Slug já está em uso")
	}

	if oldSlug != "" {
		if err := r.store.Delete(ctx, kvstore.ArticleSlugKey(oldSlug)); err != nil {
			return err
		}
	}
	return r.store.Set(ctx, kvstore.ArticleSlugKey(newSlug), []byte(articleID))
}

func (r *articleRepository) Delete(ctx context.Context, article *entity.Article) error {
	if err := r.store.Delete(ctx, kvstore.ArticleKey(article.ID)); err != nil {
		return err
	}
	return r.store.Delete(ctx, kvstore.ArticleSlugKey(article.Slug))
}

func (r *articleRepository) List(ctx context.Context) ([]entity.Article, error) {
	return kvstore.ListJSON[entity.Article](ctx, r.store, kvstore.ArticlePrefix)
}
