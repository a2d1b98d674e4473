package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/contact/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/contact/repository"
)

type ContactService interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (*entity.ContactMessage, error)
	List(ctx context.Context) ([]entity.ContactMessage, error)
}

type contactService struct {
	repo      repository.ContactRepository
	sanitizer *bluemonday.Policy
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *contactService) Create(ctx context.Context, req dto.CreateContactRequest) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		WhatsApp:  req.WhatsApp,
		Subject:   s.sanitizer.Sanitize(req.Subject),
		Message:   s.sanitizer.Sanitize(req.Message),
		Status:    "new",
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]entity.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}
