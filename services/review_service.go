package services

import (
	"context"

	"github.com/iamchrisas/macrotracker-back/models"
	"github.com/iamchrisas/macrotracker-back/repository"

	"github.com/rs/zerolog"
)

// AddReviewInput is a validated review creation request.
type AddReviewInput struct {
	FoodID    uint
	Taste     string
	Digestion string
	Rate      int
}

// UpdateReviewInput replaces all review fields, matching the edit form.
type UpdateReviewInput struct {
	Taste     string
	Digestion string
	Rate      int
}

// ReviewWithFood pairs a review with the food it references.
type ReviewWithFood struct {
	models.Review
	Food *models.Food `json:"food,omitempty"`
}

// ReviewService manages reviews; only the author may touch their reviews.
type ReviewService struct {
	reviews repository.ReviewRepository
	foods   repository.FoodRepository
	logger  zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, foods repository.FoodRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		foods:   foods,
		logger:  logger.With().Str("service", "review").Logger(),
	}
}

func validateReviewFields(taste, digestion string, rate int) error {
	if rate < 1 || rate > 5 {
		return models.ErrRateOutOfRange
	}
	if !models.ValidScale(taste) || !models.ValidScale(digestion) {
		return models.ErrInvalidScale
	}
	return nil
}

// Add creates a review; the referenced food must exist.
func (s *ReviewService) Add(ctx context.Context, authorID uint, in AddReviewInput) (*models.Review, error) {
	if err := validateReviewFields(in.Taste, in.Digestion, in.Rate); err != nil {
		return nil, err
	}

	food, err := s.foods.GetByID(ctx, in.FoodID)
	if err != nil {
		s.logger.Error().Err(err).Uint("food_id", in.FoodID).Msg("failed to fetch food")
		return nil, models.ErrStoreFailure
	}
	if food == nil {
		return nil, models.ErrFoodNotFound
	}

	review := &models.Review{
		FoodID:    in.FoodID,
		AuthorID:  authorID,
		Taste:     in.Taste,
		Digestion: in.Digestion,
		Rate:      in.Rate,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Uint("author_id", authorID).Msg("failed to create review")
		return nil, models.ErrStoreFailure
	}
	return review, nil
}

// List returns the caller's reviews, each with the food it references.
func (s *ReviewService) List(ctx context.Context, authorID uint) ([]ReviewWithFood, error) {
	reviews, err := s.reviews.ListByAuthor(ctx, authorID)
	if err != nil {
		s.logger.Error().Err(err).Uint("author_id", authorID).Msg("failed to list reviews")
		return nil, models.ErrStoreFailure
	}

	ids := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.FoodID)
	}
	foods, err := s.foods.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Uint("author_id", authorID).Msg("failed to fetch reviewed foods")
		return nil, models.ErrStoreFailure
	}
	byID := make(map[uint]models.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	out := make([]ReviewWithFood, 0, len(reviews))
	for _, r := range reviews {
		row := ReviewWithFood{Review: r}
		if f, ok := byID[r.FoodID]; ok {
			food := f
			row.Food = &food
		}
		out = append(out, row)
	}
	return out, nil
}

// Update replaces a review's fields; author only.
func (s *ReviewService) Update(ctx context.Context, authorID, reviewID uint, in UpdateReviewInput) (*models.Review, error) {
	if err := validateReviewFields(in.Taste, in.Digestion, in.Rate); err != nil {
		return nil, err
	}

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		s.logger.Error().Err(err).Uint("review_id", reviewID).Msg("failed to fetch review")
		return nil, models.ErrStoreFailure
	}
	if err := authorizeReview(review, authorID); err != nil {
		return nil, err
	}

	review.Taste = in.Taste
	review.Digestion = in.Digestion
	review.Rate = in.Rate
	if err := s.reviews.Update(ctx, review); err != nil {
		s.logger.Error().Err(err).Uint("review_id", reviewID).Msg("failed to update review")
		return nil, models.ErrStoreFailure
	}
	return review, nil
}

// Delete removes a review; author only.
func (s *ReviewService) Delete(ctx context.Context, authorID, reviewID uint) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		s.logger.Error().Err(err).Uint("review_id", reviewID).Msg("failed to fetch review")
		return models.ErrStoreFailure
	}
	if err := authorizeReview(review, authorID); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		s.logger.Error().Err(err).Uint("review_id", reviewID).Msg("failed to delete review")
		return models.ErrStoreFailure
	}
	return nil
}
