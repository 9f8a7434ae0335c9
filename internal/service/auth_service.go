package service

import (
	"context"

	"rsvp-service/internal/cache"
	"rsvp-service/internal/model"
	"rsvp-service/internal/repository"
	apperrors "rsvp-service/pkg/app_errors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login verifies credentials and opens a session, returning the user and
	// the session token to hand back as a cookie.
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*model.User, error)
	Register(ctx context.Context, name, email, password string) (*model.User, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions cache.SessionStore
}

func NewAuthService(users repository.UserRepository, sessions cache.SessionStore) AuthService {
	return &AuthServiceImpl{users: users, sessions: sessions}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if err == apperrors.ErrSessionNotFound {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			// session outlived the account
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	return s.users.Create(ctx, user)
}
