package repository

import (
	"context"
	"time"

	"github.com/programandoparacristo/plataforma/internal/entity"
	"github.com/programandoparacristo/plataforma/pkg/apperror"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

// ProfileUpdates is the allow-list of fields mutable through the generic
// profile-update path. Role and gamification are never touched here.
type ProfileUpdates struct {
	Name     *string
	Bio      *string
	Username *string
	Avatar   *string
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User, passwordHash string) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindCredentials(ctx context.Context, userID string) (*entity.Credentials, error)
	// Save persists the full user record. Gamification mutations go through
	// this after the engine re-derives rank and level.
	Save(ctx context.Context, user *entity.User) error
	// UpdateProfile applies allow-listed fields only. A username collision
	// fails with Conflict before any index or record mutation.
	UpdateProfile(ctx context.Context, id string, updates ProfileUpdates) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

type userRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	emailTaken, err := r.store.Get(ctx, kvstore.UserEmailKey(user.Email))
	if err != nil {
		return err
	}
	if emailTaken != nil {
		return apperror.Conflict("Email já cadastrado")
	}

	if user.Username != nil {
		usernameTaken, err := r.store.Get(ctx, kvstore.UsernameKey(*user.Username))
		if err != nil {
			return err
		}
		if usernameTaken != nil {
			return apperror.Conflict("Nome de usuário já está em uso")
		}
	}

	if err := kvstore.SetJSON(ctx, r.store, kvstore.UserKey(user.ID), user); err != nil {
		return err
	}
	if err := r.store.Set(ctx, kvstore.UserEmailKey(user.Email), []byte(user.ID)); err != nil {
		return err
	}
	if user.Username != nil {
		if err := r.store.Set(ctx, kvstore.UsernameKey(*user.Username), []byte(user.ID)); err != nil {
			return err
		}
	}

	creds := entity.Credentials{UserID: user.ID, PasswordHash: passwordHash}
	return kvstore.SetJSON(ctx, r.store, kvstore.CredentialsKey(user.ID), creds)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.UserKey(id), &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("Usuário não encontrado")
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	id, err := r.store.Get(ctx, kvstore.UserEmailKey(email))
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, apperror.NotFound("Usuário não encontrado")
	}
	return r.FindByID(ctx, string(id))
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	id, err := r.store.Get(ctx, kvstore.UsernameKey(username))
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, apperror.NotFound("Usuário não encontrado")
	}
	return r.FindByID(ctx, string(id))
}

func (r *userRepository) FindCredentials(ctx context.Context, userID string) (*entity.Credentials, error) {
	var creds entity.Credentials
	found, err := kvstore.GetJSON(ctx, r.store, kvstore.CredentialsKey(userID), &creds)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("Usuário não encontrado")
	}
	return &creds, nil
}

func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now().UTC()
	return kvstore.SetJSON(ctx, r.store, kvstore.UserKey(user.ID), user)
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, updates ProfileUpdates) (*entity.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate the username before mutating anything so a conflict leaves
	// neither the record nor the indices partially updated.
	changingUsername := updates.Username != nil &&
		(user.Username == nil || *updates.Username != *user.Username)
	if changingUsername {
		owner, err := r.store.Get(ctx, kvstore.UsernameKey(*updates.Username))
		if err != nil {
			return nil, err
		}
		if owner != nil && string(owner) != id {
			return nil, apperror.Conflict("Nome de usuário já está em uso")
		}
	}

	if changingUsername {
		if user.Username != nil {
			if err := r.store.Delete(ctx, kvstore.UsernameKey(*user.Username)); err != nil {
				return nil, err
			}
		}
		if err := r.store.Set(ctx, kvstore.UsernameKey(*updates.Username), []byte(id)); err != nil {
			return nil, err
		}
		user.Username = updates.Username
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Bio != nil {
		user.Bio = updates.Bio
	}
	if updates.Avatar != nil {
		user.Avatar = updates.Avatar
	}

	if err := r.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	return kvstore.ListJSON[entity.User](ctx, r.store, kvstore.UserPrefix)
}
