package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
	"github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/models"
	service "github.com/bartracker/bar-price-tracker/internal/services"
	"github.com/bartracker/bar-price-tracker/internal/utils"
	"github.com/bartracker/bar-price-tracker/internal/utils/response"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: utils.NewValidator()}
}

// Register godoc
//	@Summary		Register a user
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.User				"Registered user"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email already registered"
//	@Router			/auth/register [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userId", user.ID))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//	@Summary		Log in
//	@Description	Returns a bearer token. Attempts are rate limited per email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Credentials"
//	@Success		200			{object}	models.LoginResponse	"Token issued"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid credentials"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts"
//	@Router			/auth/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			if resp.RetryAfter > 0 {
				logger.Warn("Login rate limited")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", resp.RetryAfter))
				response.Error(w, errors.TooManyRequestsError(resp.Message).
					WithDetail(fmt.Sprintf("retry after %d seconds", resp.RetryAfter)))
				return
			}

			logger.Warn("Invalid login credentials")
			response.Error(w, errors.UnauthorizedError(resp.Message).
				WithDetail(fmt.Sprintf("%d attempts remaining", resp.RemainingTries)))
			return
		}

		logger.Info("User logged in", slog.String("userId", resp.User.ID))
		response.Success(w, http.StatusOK, resp)
	}
}
