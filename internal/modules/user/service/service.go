package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/internal/modules/user/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/user/repository"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
)

type AuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) (*dto.SignupResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	Me(ctx context.Context, userID string) (*dto.UserSummary, error)
}

type authService struct {
	repo       repository.UserRepository
	secret     string
	tokenTTL   time.Duration
	secretCode string
}

func NewAuthService(repo repository.UserRepository, secret string, tokenTTL time.Duration, secretCode string) AuthService {
	return &authService{
		repo:       repo,
		secret:     secret,
		tokenTTL:   tokenTTL,
		secretCode: secretCode,
	}
}

func (s *authService) Signup(ctx context.Context, input dto.SignupInput) (*dto.SignupResponse, error) {
	role := entity.Role(input.Role)
	if input.Role == "" {
		role = entity.RoleStudent
	}
	if !role.Valid() {
		return nil, apperror.InvalidInput("Role inválido")
	}

	// Teacher and admin accounts are gated behind a shared secret.
	if role.IsStaff() && input.SecretCode != s.secretCode {
		return nil, apperror.Forbidden("Código secreto inválido para este tipo de conta")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:     uuid.NewString(),
		Email:  input.Email,
		Name:   input.Name,
		Role:   role,
		Status: "active",
		Gamification: entity.Gamification{
			Points:           0,
			Level:            1,
			Rank:             "Madeira",
			LastActivityDate: now,
			Achievements:     []string{},
		},
		LastLoginAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, user, string(hash)); err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Success: true,
		Message: "Cadastro realizado com sucesso!",
		UserID:  user.ID,
	}, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(401, "Email ou senha incorretos", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	creds, err := s.repo.FindCredentials(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.New(401, "Email ou senha incorretos", apperror.ErrUnauthorized)
	}

	user.LastLoginAt = time.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        summarize(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserSummary, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := summarize(user)
	return &summary, nil
}

func summarize(user *entity.User) dto.UserSummary {
	return dto.UserSummary{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Avatar: user.Avatar,
		Level:  user.Gamification.Level,
		Points: user.Gamification.Points,
		Rank:   user.Gamification.Rank,
	}
}

func (s *authService) generateToken(user *entity.User) (string, int64, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}
