package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/storage"
	"artiste_site/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockTokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)

	service := NewUserService(slog.Default(), mockRepo, mockToken)

	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	testUser := models.User{
		ID:       uuid.New(),
		Email:    testEmail,
		Password: hashedPassword,
	}

	expectedTokens := &models.TokenPair{
		UserID:       testUser.ID,
		AccessToken:  "test_access_token",
		RefreshToken: "test_refresh_token",
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo.On("UserByIdentifier", ctx, testEmail).Return(testUser, nil).Once()
		mockToken.On("GenerateTokens", ctx, testUser).Return(expectedTokens, nil).Once()
		mockRepo.On("TouchLastLogin", ctx, testUser.ID).Return(nil).Once()

		tokens, user, err := service.Login(ctx, testEmail, testPassword)
		require.NoError(t, err)
		assert.Equal(t, expectedTokens, tokens)
		assert.Equal(t, testUser.ID, user.ID)
	})

	t.Run("last login failure does not block login", func(t *testing.T) {
		mockRepo.On("UserByIdentifier", ctx, testEmail).Return(testUser, nil).Once()
		mockToken.On("GenerateTokens", ctx, testUser).Return(expectedTokens, nil).Once()
		mockRepo.On("TouchLastLogin", ctx, testUser.ID).Return(errors.New("db error")).Once()

		_, _, err := service.Login(ctx, testEmail, testPassword)
		assert.NoError(t, err)
	})

	t.Run("invalid password", func(t *testing.T) {
		mockRepo.On("UserByIdentifier", ctx, testEmail).Return(testUser, nil).Once()

		_, _, err := service.Login(ctx, testEmail, "wrong_password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.On("UserByIdentifier", ctx, "nonexistent@example.com").
			Return(models.User{}, storage.ErrUserNotFound).Once()

		_, _, err := service.Login(ctx, "nonexistent@example.com", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.On("UserByIdentifier", ctx, testEmail).
			Return(models.User{}, errors.New("db error")).Once()

		_, _, err := service.Login(ctx, testEmail, testPassword)
		assert.ErrorContains(t, err, "db error")
	})

	mockRepo.AssertExpectations(t)
	mockToken.AssertExpectations(t)
}

func TestUserService_RegisterNewUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := NewUserService(slog.Default(), mockRepo, new(MockTokenService))

	testInput := dto.UserRegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Phone:    "+33612345678",
		Password: "password123",
	}

	t.Run("successful registration", func(t *testing.T) {
		expectedID := uuid.New()
		mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
			return u.Email == testInput.Email &&
				bcrypt.CompareHashAndPassword(u.Password, []byte(testInput.Password)) == nil
		})).Return(expectedID, nil).Once()

		id, err := service.RegisterNewUser(ctx, testInput)
		require.NoError(t, err)
		assert.Equal(t, expectedID, id)
	})

	t.Run("user already exists", func(t *testing.T) {
		mockRepo.On("SaveUser", ctx, mock.Anything).
			Return(uuid.Nil, storage.ErrUserExists).Once()

		_, err := service.RegisterNewUser(ctx, testInput)
		assert.ErrorIs(t, err, ErrUserExist)
		assert.ErrorIs(t, err, storage.ErrUserExists)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.On("SaveUser", ctx, mock.Anything).
			Return(uuid.Nil, errors.New("db error")).Once()

		_, err := service.RegisterNewUser(ctx, testInput)
		assert.ErrorContains(t, err, "db error")
	})

	t.Run("invalid password hash", func(t *testing.T) {
		// bcrypt не принимает пароли длиннее 72 байт
		longPassInput := testInput
		longPassInput.Password = string(make([]byte, 100))

		_, err := service.RegisterNewUser(ctx, longPassInput)
		assert.Error(t, err)
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := NewUserService(slog.Default(), mockRepo, new(MockTokenService))

	testUserID := uuid.New()

	t.Run("user is admin", func(t *testing.T) {
		mockRepo.On("IsAdmin", ctx, testUserID).Return(true, nil).Once()

		isAdmin, err := service.IsAdmin(ctx, testUserID)
		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.On("IsAdmin", ctx, testUserID).
			Return(false, errors.New("db error")).Once()

		_, err := service.IsAdmin(ctx, testUserID)
		assert.ErrorContains(t, err, "db error")
	})
}

func TestUserService_GetUserById(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := NewUserService(slog.Default(), mockRepo, new(MockTokenService))

	id := uuid.New()
	mockRepo.On("GetUserById", ctx, id).Return(models.User{}, storage.ErrUserNotFound).Once()

	_, err := service.GetUserById(ctx, id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
