package services

import (
	"context"

	"github.com/iamchrisas/macrotracker-back/models"
	"github.com/iamchrisas/macrotracker-back/repository"

	"github.com/rs/zerolog"
)

// UpdateProfileInput carries optional goal fields; nil means unchanged.
type UpdateProfileInput struct {
	Name             string
	DailyProteinGoal *float64
	DailyCarbGoal    *float64
	DailyFatGoal     *float64
	DailyCalorieGoal *float64
	WeightGoal       *float64
	CurrentWeight    *float64
}

// UserService reads and edits the caller's own profile.
type UserService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

// Profile returns the user record; the password hash never serializes.
func (s *UserService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to fetch user")
		return nil, models.ErrStoreFailure
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the provided goal fields and writes the record back.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to fetch user")
		return nil, models.ErrStoreFailure
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.DailyProteinGoal != nil {
		user.DailyProteinGoal = *in.DailyProteinGoal
	}
	if in.DailyCarbGoal != nil {
		user.DailyCarbGoal = *in.DailyCarbGoal
	}
	if in.DailyFatGoal != nil {
		user.DailyFatGoal = *in.DailyFatGoal
	}
	if in.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *in.DailyCalorieGoal
	}
	if in.WeightGoal != nil {
		user.WeightGoal = *in.WeightGoal
	}
	if in.CurrentWeight != nil {
		user.CurrentWeight = *in.CurrentWeight
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to update user")
		return nil, models.ErrStoreFailure
	}
	return user, nil
}
