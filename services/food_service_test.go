package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iamchrisas/macrotracker-back/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const placeholderURL = "https://cdn.example.com/placeholder.png"

func newFoodService(foods *MockFoodRepository, reviews *MockReviewRepository, assets *MockAssetStore) *FoodService {
	return NewFoodService(foods, reviews, assets, placeholderURL, zerolog.Nop())
}

func TestFoodService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("missing name is rejected", func(t *testing.T) {
		foods := new(MockFoodRepository)
		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))

		_, err := svc.Add(ctx, 1, AddFoodInput{Name: "  "})
		assert.ErrorIs(t, err, models.ErrNameRequired)
		foods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("defaults image to the placeholder", func(t *testing.T) {
		foods := new(MockFoodRepository)
		foods.On("Create", ctx, mock.Anything).Return(nil)
		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))

		food, err := svc.Add(ctx, 1, AddFoodInput{Name: "Oats", Protein: 10, Carbs: 60, Fat: 5, Calories: 300})
		require.NoError(t, err)

		assert.Equal(t, placeholderURL, food.Image)
		assert.Equal(t, uint(1), food.UserID)
		assert.Equal(t, time.UTC, food.Date.Location())
	})

	t.Run("uploads the provided image", func(t *testing.T) {
		foods := new(MockFoodRepository)
		foods.On("Create", ctx, mock.Anything).Return(nil)
		assets := new(MockAssetStore)
		assets.On("Upload", ctx, "data:image/png;base64,xxxx", "food-images").
			Return("https://cdn.example.com/food-images/abc.png", nil)
		svc := newFoodService(foods, new(MockReviewRepository), assets)

		food, err := svc.Add(ctx, 1, AddFoodInput{Name: "Oats", ImageBase64: "data:image/png;base64,xxxx"})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/food-images/abc.png", food.Image)
	})

	t.Run("upload failure surfaces as dependency failure", func(t *testing.T) {
		foods := new(MockFoodRepository)
		assets := new(MockAssetStore)
		assets.On("Upload", ctx, mock.Anything, mock.Anything).Return("", errors.New("s3 down"))
		svc := newFoodService(foods, new(MockReviewRepository), assets)

		_, err := svc.Add(ctx, 1, AddFoodInput{Name: "Oats", ImageBase64: "data:image/png;base64,xxxx"})
		assert.ErrorIs(t, err, models.ErrAssetFailure)
		foods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFoodService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entry with reviews", func(t *testing.T) {
		foods := new(MockFoodRepository)
		reviews := new(MockReviewRepository)

		food := &models.Food{UserID: 1, Name: "Oats"}
		food.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(food, nil)
		reviews.On("ListByFood", ctx, uint(7)).Return([]models.Review{
			{FoodID: 7, AuthorID: 1, Taste: models.ScaleGreat, Digestion: models.ScaleOK, Rate: 4},
		}, nil)

		svc := newFoodService(foods, reviews, new(MockAssetStore))
		got, err := svc.Get(ctx, 1, 7)
		require.NoError(t, err)

		assert.Equal(t, "Oats", got.Food.Name)
		require.Len(t, got.Reviews, 1)
		assert.Equal(t, 4, got.Reviews[0].Rate)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		foods := new(MockFoodRepository)
		foods.On("GetByID", ctx, uint(99)).Return(nil, nil)

		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))
		_, err := svc.Get(ctx, 1, 99)
		assert.ErrorIs(t, err, models.ErrFoodNotFound)
	})

	t.Run("someone else's entry is forbidden", func(t *testing.T) {
		foods := new(MockFoodRepository)
		other := &models.Food{UserID: 2, Name: "Oats"}
		other.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(other, nil)

		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))
		_, err := svc.Get(ctx, 1, 7)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})
}

func TestFoodService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only provided fields", func(t *testing.T) {
		foods := new(MockFoodRepository)
		food := &models.Food{UserID: 1, Name: "Oats", Protein: 10, Carbs: 60, Fat: 5, Calories: 300, Image: placeholderURL}
		food.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(food, nil)
		foods.On("Update", ctx, mock.Anything).Return(nil)

		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))
		protein := 12.0
		got, err := svc.Update(ctx, 1, 7, UpdateFoodInput{Protein: &protein})
		require.NoError(t, err)

		assert.Equal(t, 12.0, got.Protein)
		assert.Equal(t, "Oats", got.Name)
		assert.Equal(t, 60.0, got.Carbs)
	})

	t.Run("cross-owner edit is forbidden and writes nothing", func(t *testing.T) {
		foods := new(MockFoodRepository)
		other := &models.Food{UserID: 2, Name: "Oats"}
		other.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(other, nil)

		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))
		name := "Hacked"
		_, err := svc.Update(ctx, 1, 7, UpdateFoodInput{Name: name})
		assert.ErrorIs(t, err, models.ErrForbidden)
		foods.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("concurrent edits resolve last-write-wins", func(t *testing.T) {
		// Two editors read the same base record; the later write's base
		// values win wholesale. Accepted race, not serializable.
		foods := new(MockFoodRepository)

		base := models.Food{UserID: 1, Name: "Oats", Protein: 10, Carbs: 60}
		base.ID = 7
		copyA, copyB := base, base
		foods.On("GetByID", ctx, uint(7)).Return(&copyA, nil).Once()
		foods.On("GetByID", ctx, uint(7)).Return(&copyB, nil).Once()

		var last models.Food
		foods.On("Update", ctx, mock.Anything).Run(func(args mock.Arguments) {
			last = *args.Get(1).(*models.Food)
		}).Return(nil)

		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))

		protein := 20.0
		_, err := svc.Update(ctx, 1, 7, UpdateFoodInput{Protein: &protein})
		require.NoError(t, err)

		carbs := 50.0
		_, err = svc.Update(ctx, 1, 7, UpdateFoodInput{Carbs: &carbs})
		require.NoError(t, err)

		assert.Equal(t, 50.0, last.Carbs)
		assert.Equal(t, 10.0, last.Protein, "second write carries its own stale base, overwriting the first edit")
	})
}

func TestFoodService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the asset before the record", func(t *testing.T) {
		foods := new(MockFoodRepository)
		assets := new(MockAssetStore)

		food := &models.Food{UserID: 1, Name: "Oats", Image: "https://cdn.example.com/food-images/abc.png"}
		food.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(food, nil)
		assets.On("Delete", ctx, food.Image).Return(nil)
		foods.On("Delete", ctx, uint(7)).Return(nil)

		svc := newFoodService(foods, new(MockReviewRepository), assets)
		require.NoError(t, svc.Delete(ctx, 1, 7))

		assets.AssertExpectations(t)
		foods.AssertExpectations(t)
	})

	t.Run("asset deletion failure aborts the record delete", func(t *testing.T) {
		foods := new(MockFoodRepository)
		assets := new(MockAssetStore)

		food := &models.Food{UserID: 1, Name: "Oats", Image: "https://cdn.example.com/food-images/abc.png"}
		food.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(food, nil)
		assets.On("Delete", ctx, food.Image).Return(errors.New("s3 down"))

		svc := newFoodService(foods, new(MockReviewRepository), assets)
		err := svc.Delete(ctx, 1, 7)
		assert.ErrorIs(t, err, models.ErrAssetFailure)
		foods.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("placeholder image needs no asset delete", func(t *testing.T) {
		foods := new(MockFoodRepository)
		assets := new(MockAssetStore)

		food := &models.Food{UserID: 1, Name: "Oats", Image: placeholderURL}
		food.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(food, nil)
		foods.On("Delete", ctx, uint(7)).Return(nil)

		svc := newFoodService(foods, new(MockReviewRepository), assets)
		require.NoError(t, svc.Delete(ctx, 1, 7))
		assets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		foods := new(MockFoodRepository)
		foods.On("GetByID", ctx, uint(99)).Return(nil, nil)

		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))
		assert.ErrorIs(t, svc.Delete(ctx, 1, 99), models.ErrFoodNotFound)
	})

	t.Run("cross-owner delete is forbidden", func(t *testing.T) {
		foods := new(MockFoodRepository)
		other := &models.Food{UserID: 2, Name: "Oats"}
		other.ID = 7
		foods.On("GetByID", ctx, uint(7)).Return(other, nil)

		svc := newFoodService(foods, new(MockReviewRepository), new(MockAssetStore))
		assert.ErrorIs(t, svc.Delete(ctx, 1, 7), models.ErrForbidden)
		foods.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
