package service

import (
	"context"
	"testing"

	"rsvp-service/internal/model"
	"rsvp-service/internal/repository/mocks"
	apperrors "rsvp-service/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type sessionStoreMock struct {
	mock.Mock
}

func (m *sessionStoreMock) Create(ctx context.Context, userID int) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *sessionStoreMock) Get(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (m *sessionStoreMock) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := mocks.NewUserRepositoryMock()
		sessions := &sessionStoreMock{}
		svc := NewAuthService(users, sessions)

		user := &model.User{ID: 7, Email: "organizer@example.com", PasswordHash: hashPassword(t, "hunter22")}
		users.On("FindByEmail", mock.Anything, "organizer@example.com").Return(user, nil).Once()
		sessions.On("Create", mock.Anything, 7).Return("token-123", nil).Once()

		got, token, err := svc.Login(context.Background(), "organizer@example.com", "hunter22")

		assert.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Equal(t, "token-123", token)
		sessions.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		users := mocks.NewUserRepositoryMock()
		sessions := &sessionStoreMock{}
		svc := NewAuthService(users, sessions)

		user := &model.User{ID: 7, Email: "organizer@example.com", PasswordHash: hashPassword(t, "hunter22")}
		users.On("FindByEmail", mock.Anything, "organizer@example.com").Return(user, nil).Once()

		_, _, err := svc.Login(context.Background(), "organizer@example.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		sessions.AssertNotCalled(t, "Create")
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		users := mocks.NewUserRepositoryMock()
		sessions := &sessionStoreMock{}
		svc := NewAuthService(users, sessions)

		users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

		_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

		// unknown email and wrong password are indistinguishable
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthServiceAuthenticate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := mocks.NewUserRepositoryMock()
		sessions := &sessionStoreMock{}
		svc := NewAuthService(users, sessions)

		user := &model.User{ID: 7, Email: "organizer@example.com"}
		sessions.On("Get", mock.Anything, "token-123").Return(7, nil).Once()
		users.On("FindByID", mock.Anything, 7).Return(user, nil).Once()

		got, err := svc.Authenticate(context.Background(), "token-123")

		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		users := mocks.NewUserRepositoryMock()
		sessions := &sessionStoreMock{}
		svc := NewAuthService(users, sessions)

		sessions.On("Get", mock.Anything, "stale").Return(0, apperrors.ErrSessionNotFound).Once()

		_, err := svc.Authenticate(context.Background(), "stale")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		users.AssertNotCalled(t, "FindByID")
	})

	t.Run("DeletedUser", func(t *testing.T) {
		users := mocks.NewUserRepositoryMock()
		sessions := &sessionStoreMock{}
		svc := NewAuthService(users, sessions)

		sessions.On("Get", mock.Anything, "token-123").Return(7, nil).Once()
		users.On("FindByID", mock.Anything, 7).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.Authenticate(context.Background(), "token-123")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("HashesPassword", func(t *testing.T) {
		users := mocks.NewUserRepositoryMock()
		sessions := &sessionStoreMock{}
		svc := NewAuthService(users, sessions)

		users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "organizer@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")) == nil
		})).Return(&model.User{ID: 1, Email: "organizer@example.com"}, nil).Once()

		got, err := svc.Register(context.Background(), "Organizer", "organizer@example.com", "hunter22")

		assert.NoError(t, err)
		assert.Equal(t, 1, got.ID)
		users.AssertExpectations(t)
	})
}
