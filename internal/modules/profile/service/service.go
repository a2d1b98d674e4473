package service

import (
	"context"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/profile/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/user/repository"
)

type ProfileService interface {
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*entity.User, error)
	// GetPublicProfile hides email and account status from unauthenticated
	// callers.
	GetPublicProfile(ctx context.Context, userID string) (*dto.PublicProfile, error)
}

type profileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*entity.User, error) {
	return s.users.UpdateProfile(ctx, userID, repository.ProfileUpdates{
		Name:     req.Name,
		Bio:      req.Bio,
		Username: req.Username,
		Avatar:   req.Avatar,
	})
}

func (s *profileService) GetPublicProfile(ctx context.Context, userID string) (*dto.PublicProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.PublicProfile{
		ID:           user.ID,
		Name:         user.Name,
		Role:         user.Role,
		Username:     user.Username,
		Avatar:       user.Avatar,
		Bio:          user.Bio,
		Gamification: user.Gamification,
		CreatedAt:    user.CreatedAt,
	}, nil
}
