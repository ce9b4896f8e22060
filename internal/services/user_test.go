package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/models"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
	"github.com/bartracker/bar-price-tracker/internal/repositories/mocks"
	service "github.com/bartracker/bar-price-tracker/internal/services"
)

var jwtKey = []byte("test-key")

func TestUserService_Register(t *testing.T) {

	req := &models.RegisterRequest{
		Email:     "Test@Example.com ",
		Password:  "P@ssword123!",
		FirstName: "Sam",
		LastName:  "<i>Taylor</i>",
	}

	t.Run("Success - User Registration", func(t *testing.T) {
		// Arrange
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)

		var storedHash string

		userRepo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(nil, repository.ErrNotFound).Once()
		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User"), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).
			Return(nil).Once()

		// Act
		user, err := svc.Register(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, "Taylor", user.LastName)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)))
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		// Arrange
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)

		userRepo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(&models.User{ID: "u1"}, nil).Once()

		// Act
		user, err := svc.Register(t.Context(), req)

		// Assert
		assert.Nil(t, user)
		assertAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		userRepo := mocks.NewUserRepository(t)
		svc := service.NewUserService(userRepo, mocks.NewRateLimitRepository(t), jwtKey, time.Hour)

		userRepo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound).Once()
		userRepo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("something exploded")).Once()

		// Act
		user, err := svc.Register(t.Context(), req)

		// Assert
		assert.Nil(t, user)
		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestUserService_Login(t *testing.T) {

	password := "P@ssword123!"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{ID: "u1", Email: "test@example.com"}

	t.Run("Success - Valid Credentials", func(t *testing.T) {
		// Arrange
		userRepo := mocks.NewUserRepository(t)
		rateRepo := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, rateRepo, jwtKey, 2*time.Hour)

		rateRepo.On("CheckLoginRateLimit", mock.Anything, "test@example.com").Return(true, 4, 0, nil).Once()
		userRepo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(user, nil).Once()
		userRepo.On("GetPasswordHash", mock.Anything, "u1").Return(string(hashed), nil).Once()

		// Act
		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "test@example.com", Password: password})

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 7200, resp.ExpiresIn)

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) { return jwtKey, nil })
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		// Arrange
		userRepo := mocks.NewUserRepository(t)
		rateRepo := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, rateRepo, jwtKey, time.Hour)

		rateRepo.On("CheckLoginRateLimit", mock.Anything, "test@example.com").Return(true, 3, 0, nil).Once()
		userRepo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(user, nil).Once()
		userRepo.On("GetPasswordHash", mock.Anything, "u1").Return(string(hashed), nil).Once()

		// Act
		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "test@example.com", Password: "nope"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Token)
		assert.Equal(t, 3, resp.RemainingTries)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		userRepo := mocks.NewUserRepository(t)
		rateRepo := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(userRepo, rateRepo, jwtKey, time.Hour)

		rateRepo.On("CheckLoginRateLimit", mock.Anything, "test@example.com").Return(false, 0, 12, nil).Once()

		// Act
		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "test@example.com", Password: password})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 12, resp.RetryAfter)
		userRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate limiter unavailable", func(t *testing.T) {
		// Arrange
		rateRepo := mocks.NewRateLimitRepository(t)
		svc := service.NewUserService(mocks.NewUserRepository(t), rateRepo, jwtKey, time.Hour)

		rateRepo.On("CheckLoginRateLimit", mock.Anything, mock.Anything).Return(false, 0, 0, errors.New("redis down")).Once()

		// Act
		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "test@example.com", Password: password})

		// Assert
		assert.Nil(t, resp)
		assertAppError(t, err, appErrors.ErrCodeThirdPartyError)
	})
}
