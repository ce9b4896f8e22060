package service

import (
	"context"
	stdErrors "errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/models"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	jwtKey    []byte
	tokenTTL  time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimit repository.RateLimitRepository, jwtKey []byte, tokenTTL time.Duration) UserService {
	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		jwtKey:    jwtKey,
		tokenTTL:  tokenTTL,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	if err != nil && !stdErrors.Is(err, repository.ErrNotFound) {
		return nil, errors.DatabaseError("Failed to check existing user").WithError(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Email:     email,
		FirstName: sanitize(req.FirstName),
		LastName:  sanitize(req.LastName),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user, string(hashedPassword)); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	invalid := &models.LoginResponse{
		Success:        false,
		Message:        "Invalid email or password",
		RemainingTries: remaining,
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return invalid, nil
		}

		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	hash, err := s.repo.GetPasswordHash(ctx, user.ID)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return invalid, nil
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		User:      user,
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch users").WithError(err)
	}

	return users, nil
}
