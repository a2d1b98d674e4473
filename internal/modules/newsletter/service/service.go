package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/newsletter/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/newsletter/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/webhook"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (*entity.Subscriber, error)
}

type newsletterService struct {
	repo    repository.NewsletterRepository
	webhook *webhook.Client
}

func NewNewsletterService(repo repository.NewsletterRepository, webhook *webhook.Client) NewsletterService {
	return &newsletterService{repo: repo, webhook: webhook}
}

func (s *newsletterService) Subscribe(ctx context.Context, req dto.SubscribeRequest) (*entity.Subscriber, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == "active" {
		return nil, apperror.Conflict("Você já está inscrito!")
	}

	now := time.Now().UTC()
	sub := &entity.Subscriber{
		Email:         email,
		Name:          req.Name,
		Status:        "active",
		Source:        req.Source,
		SourceURL:     req.SourceURL,
		UTMCampaign:   req.UTMCampaign,
		UTMSource:     req.UTMSource,
		UTMMedium:     req.UTMMedium,
		OptInWhatsApp: req.OptInWhatsApp,
		SubscribedAt:  now,
		CreatedAt:     now,
	}
	if existing != nil {
		sub.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}

	// Fire-and-forget: the subscription is committed regardless of whether
	// the automation webhook answers.
	if s.webhook.Enabled() {
		go func(payload *entity.Subscriber) {
			if err := s.webhook.Notify(context.Background(), payload); err != nil {
				log.Printf("newsletter webhook failed for %s: %v", payload.Email, err)
			}
		}(sub)
	}

	return sub, nil
}
