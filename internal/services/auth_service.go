package services

import (
	"errors"
	"fmt"
	"log/slog"

	"invoicing-dashboard/internal/dto"
	apperrors "invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/models"
	"invoicing-dashboard/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		logger:          logger,
	}
}

// SignUp registers a new user. Business rule violations surface as field
// errors on the MutationResult so the signup form can render them inline.
func (s *AuthService) SignUp(req *dto.SignUpRequest) (*dto.MutationResult, error) {
	result := &dto.MutationResult{}

	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		result.AddFieldError("password", err.Error())
	}

	if req.Password != req.ConfirmPassword {
		result.AddFieldError("confirm_password", apperrors.GetErrorMessage(apperrors.UserPasswordMismatch))
	}

	if !result.OK() {
		result.Message = apperrors.GetErrorMessage(apperrors.ValidationGeneral)
		s.recordAuthEvent("signup_failed")
		return result, nil
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		result.AddFieldError("email", apperrors.GetErrorMessage(apperrors.UserEmailRegistered))
		result.Message = apperrors.GetErrorMessage(apperrors.UserEmailRegistered)
		s.recordAuthEvent("signup_failed")
		return result, nil
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			result.AddFieldError("email", apperrors.GetErrorMessage(apperrors.UserEmailRegistered))
			result.Message = apperrors.GetErrorMessage(apperrors.UserEmailRegistered)
			s.recordAuthEvent("signup_failed")
			return result, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"email", user.Email)
	s.recordAuthEvent("signup_success")

	result.RedirectTo = "/login"
	return result, nil
}

// Login authenticates a user and returns an access token
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.recordAuthEvent("login_failed")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.logger.Warn("login rejected",
			"email", req.Email)
		s.recordAuthEvent("login_failed")
		return nil, ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID)
	s.recordAuthEvent("login_success")

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &dto.UserProfileResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *AuthService) recordAuthEvent(eventType string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("authentication_event", map[string]string{
		"event_type": eventType,
	})
}
