package services

import (
	"context"
	"strings"
	"time"

	"github.com/iamchrisas/macrotracker-back/models"
	"github.com/iamchrisas/macrotracker-back/repository"

	"github.com/rs/zerolog"
)

// AssetStore is the external image storage. Delete must succeed (or the
// object must be known not to exist) before a food entry may be removed.
type AssetStore interface {
	Upload(ctx context.Context, base64Data, prefix string) (string, error)
	Delete(ctx context.Context, url string) error
}

// AddFoodInput is a fully-defaulted food creation request: the controller
// resolves optional fields before it reaches the service.
type AddFoodInput struct {
	Name        string
	Protein     float64
	Carbs       float64
	Fat         float64
	Calories    float64
	Date        *time.Time
	ImageBase64 string
}

// UpdateFoodInput carries only the fields the client wants to change.
type UpdateFoodInput struct {
	Name        string
	Protein     *float64
	Carbs       *float64
	Fat         *float64
	Calories    *float64
	ImageBase64 string
}

// FoodWithReviews is the single-food response shape.
type FoodWithReviews struct {
	Food    models.Food     `json:"foodItem"`
	Reviews []models.Review `json:"reviews"`
}

// FoodService manages food entries and their images.
type FoodService struct {
	foods          repository.FoodRepository
	reviews        repository.ReviewRepository
	assets         AssetStore
	placeholderURL string
	logger         zerolog.Logger
}

// NewFoodService creates a new food service. placeholderURL is the image
// assigned when the client uploads none.
func NewFoodService(foods repository.FoodRepository, reviews repository.ReviewRepository, assets AssetStore, placeholderURL string, logger zerolog.Logger) *FoodService {
	return &FoodService{
		foods:          foods,
		reviews:        reviews,
		assets:         assets,
		placeholderURL: placeholderURL,
		logger:         logger.With().Str("service", "food").Logger(),
	}
}

// Add creates a food entry for ownerID. The timestamp defaults to now and
// is stored in UTC.
func (s *FoodService) Add(ctx context.Context, ownerID uint, in AddFoodInput) (*models.Food, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.ErrNameRequired
	}

	image := s.placeholderURL
	if in.ImageBase64 != "" {
		url, err := s.assets.Upload(ctx, in.ImageBase64, "food-images")
		if err != nil {
			s.logger.Error().Err(err).Uint("user_id", ownerID).Msg("image upload failed")
			return nil, models.ErrAssetFailure
		}
		image = url
	}

	date := time.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}

	food := &models.Food{
		UserID:   ownerID,
		Date:     date,
		Name:     in.Name,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Calories: in.Calories,
		Image:    image,
	}
	if err := s.foods.Create(ctx, food); err != nil {
		s.logger.Error().Err(err).Uint("user_id", ownerID).Msg("failed to create food")
		return nil, models.ErrStoreFailure
	}
	return food, nil
}

// List returns all entries owned by ownerID.
func (s *FoodService) List(ctx context.Context, ownerID uint) ([]models.Food, error) {
	foods, err := s.foods.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", ownerID).Msg("failed to list foods")
		return nil, models.ErrStoreFailure
	}
	if foods == nil {
		foods = []models.Food{}
	}
	return foods, nil
}

// Get returns one entry plus the reviews referencing it.
func (s *FoodService) Get(ctx context.Context, ownerID, foodID uint) (*FoodWithReviews, error) {
	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		s.logger.Error().Err(err).Uint("food_id", foodID).Msg("failed to fetch food")
		return nil, models.ErrStoreFailure
	}
	if err := authorizeFood(food, ownerID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByFood(ctx, foodID)
	if err != nil {
		s.logger.Error().Err(err).Uint("food_id", foodID).Msg("failed to list reviews")
		return nil, models.ErrStoreFailure
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return &FoodWithReviews{Food: *food, Reviews: reviews}, nil
}

// Update applies the provided fields to an entry the caller owns. The
// whole record is written back; concurrent edits resolve last-write-wins.
func (s *FoodService) Update(ctx context.Context, ownerID, foodID uint, in UpdateFoodInput) (*models.Food, error) {
	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		s.logger.Error().Err(err).Uint("food_id", foodID).Msg("failed to fetch food")
		return nil, models.ErrStoreFailure
	}
	if err := authorizeFood(food, ownerID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) != "" {
		food.Name = in.Name
	}
	if in.Protein != nil {
		food.Protein = *in.Protein
	}
	if in.Carbs != nil {
		food.Carbs = *in.Carbs
	}
	if in.Fat != nil {
		food.Fat = *in.Fat
	}
	if in.Calories != nil {
		food.Calories = *in.Calories
	}
	if in.ImageBase64 != "" {
		url, err := s.assets.Upload(ctx, in.ImageBase64, "food-images")
		if err != nil {
			s.logger.Error().Err(err).Uint("food_id", foodID).Msg("image upload failed")
			return nil, models.ErrAssetFailure
		}
		food.Image = url
	}

	if err := s.foods.Update(ctx, food); err != nil {
		s.logger.Error().Err(err).Uint("food_id", foodID).Msg("failed to update food")
		return nil, models.ErrStoreFailure
	}
	return food, nil
}

// Delete removes an entry the caller owns. The stored image is deleted
// first; if that fails the record stays, so nothing is ever orphaned.
func (s *FoodService) Delete(ctx context.Context, ownerID, foodID uint) error {
	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		s.logger.Error().Err(err).Uint("food_id", foodID).Msg("failed to fetch food")
		return models.ErrStoreFailure
	}
	if err := authorizeFood(food, ownerID); err != nil {
		return err
	}

	if food.Image != "" && food.Image != s.placeholderURL {
		if err := s.assets.Delete(ctx, food.Image); err != nil {
			s.logger.Error().Err(err).Uint("food_id", foodID).Str("image", food.Image).
				Msg("image deletion failed, keeping food entry")
			return models.ErrAssetFailure
		}
	}

	if err := s.foods.Delete(ctx, foodID); err != nil {
		s.logger.Error().Err(err).Uint("food_id", foodID).Msg("failed to delete food")
		return models.ErrStoreFailure
	}
	return nil
}
