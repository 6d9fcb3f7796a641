package services

import (
	"context"
	"strings"

	"github.com/iamchrisas/macrotracker-back/models"
	"github.com/iamchrisas/macrotracker-back/repository"
	"github.com/iamchrisas/macrotracker-back/utils"

	"github.com/rs/zerolog"
)

// AuthService registers accounts and issues bearer tokens. Token
// verification lives in the auth middleware.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
	logger    zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, jwtSecret string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return nil, models.NewDomainError(models.ErrCodeValidation, "Email, password and name are required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up email")
		return nil, models.ErrStoreFailure
	}
	if existing != nil {
		return nil, models.NewDomainError(models.ErrCodeValidation, "Email already registered")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, models.NewDomainError(models.ErrCodeInternal, "Could not create account")
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Name:     strings.TrimSpace(name),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, models.ErrStoreFailure
	}
	return user, nil
}

// Login checks the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up email")
		return "", models.ErrStoreFailure
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", models.ErrBadCredentials
	}

	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", user.ID).Msg("failed to sign token")
		return "", models.NewDomainError(models.ErrCodeInternal, "Could not issue token")
	}
	return token, nil
}
