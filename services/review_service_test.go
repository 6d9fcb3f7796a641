package services

import (
	"context"
	"testing"

	"github.com/iamchrisas/macrotracker-back/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewService(reviews *MockReviewRepository, foods *MockFoodRepository) *ReviewService {
	return NewReviewService(reviews, foods, zerolog.Nop())
}

func TestReviewService_Add_RateBounds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		rate    int
		wantErr bool
	}{
		{"rate 0 rejected", 0, true},
		{"rate 6 rejected", 6, true},
		{"rate 1 accepted", 1, false},
		{"rate 5 accepted", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := new(MockReviewRepository)
			foods := new(MockFoodRepository)

			food := &models.Food{UserID: 1, Name: "Oats"}
			food.ID = 7
			foods.On("GetByID", ctx, uint(7)).Return(food, nil).Maybe()
			reviews.On("Create", ctx, mock.Anything).Return(nil).Maybe()

			svc := newReviewService(reviews, foods)
			_, err := svc.Add(ctx, 1, AddReviewInput{
				FoodID:    7,
				Taste:     models.ScaleGreat,
				Digestion: models.ScaleOK,
				Rate:      tt.rate,
			})

			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrRateOutOfRange)
				reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_Add_InvalidScale(t *testing.T) {
	svc := newReviewService(new(MockReviewRepository), new(MockFoodRepository))

	_, err := svc.Add(context.Background(), 1, AddReviewInput{
		FoodID:    7,
		Taste:     "delicious",
		Digestion: models.ScaleOK,
		Rate:      3,
	})
	assert.ErrorIs(t, err, models.ErrInvalidScale)
}

func TestReviewService_Add_FoodMissing(t *testing.T) {
	ctx := context.Background()
	foods := new(MockFoodRepository)
	foods.On("GetByID", ctx, uint(99)).Return(nil, nil)

	svc := newReviewService(new(MockReviewRepository), foods)
	_, err := svc.Add(ctx, 1, AddReviewInput{
		FoodID:    99,
		Taste:     models.ScaleBad,
		Digestion: models.ScaleBad,
		Rate:      1,
	})
	assert.ErrorIs(t, err, models.ErrFoodNotFound)
}

func TestReviewService_List_AttachesFood(t *testing.T) {
	ctx := context.Background()
	reviews := new(MockReviewRepository)
	foods := new(MockFoodRepository)

	r1 := models.Review{FoodID: 7, AuthorID: 1, Taste: models.ScaleGreat, Digestion: models.ScaleGreat, Rate: 5}
	r1.ID = 20
	r2 := models.Review{FoodID: 8, AuthorID: 1, Taste: models.ScaleOK, Digestion: models.ScaleOK, Rate: 3}
	r2.ID = 21
	reviews.On("ListByAuthor", ctx, uint(1)).Return([]models.Review{r1, r2}, nil)

	oats := models.Food{UserID: 1, Name: "Oats"}
	oats.ID = 7
	// food 8 has since been deleted; its review still lists, foodless
	foods.On("GetByIDs", ctx, []uint{7, 8}).Return([]models.Food{oats}, nil)

	svc := newReviewService(reviews, foods)
	got, err := svc.List(ctx, 1)
	require.NoError(t, err)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].Food)
	assert.Equal(t, "Oats", got[0].Food.Name)
	assert.Nil(t, got[1].Food)
}

func TestReviewService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("author edits their review", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		review := &models.Review{FoodID: 7, AuthorID: 1, Taste: models.ScaleOK, Digestion: models.ScaleOK, Rate: 3}
		review.ID = 20
		reviews.On("GetByID", ctx, uint(20)).Return(review, nil)
		reviews.On("Update", ctx, mock.Anything).Return(nil)

		svc := newReviewService(reviews, new(MockFoodRepository))
		got, err := svc.Update(ctx, 1, 20, UpdateReviewInput{
			Taste:     models.ScaleGreat,
			Digestion: models.ScaleGreat,
			Rate:      5,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, got.Rate)
		assert.Equal(t, models.ScaleGreat, got.Taste)
	})

	t.Run("someone else's review is forbidden", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		review := &models.Review{FoodID: 7, AuthorID: 2, Taste: models.ScaleOK, Digestion: models.ScaleOK, Rate: 3}
		review.ID = 20
		reviews.On("GetByID", ctx, uint(20)).Return(review, nil)

		svc := newReviewService(reviews, new(MockFoodRepository))
		_, err := svc.Update(ctx, 1, 20, UpdateReviewInput{
			Taste:     models.ScaleBad,
			Digestion: models.ScaleBad,
			Rate:      1,
		})
		assert.ErrorIs(t, err, models.ErrForbidden)
		reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id is not found", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("GetByID", ctx, uint(99)).Return(nil, nil)

		svc := newReviewService(reviews, new(MockFoodRepository))
		assert.ErrorIs(t, svc.Delete(ctx, 1, 99), models.ErrReviewNotFound)
	})

	t.Run("author deletes their review", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		review := &models.Review{FoodID: 7, AuthorID: 1, Taste: models.ScaleOK, Digestion: models.ScaleOK, Rate: 3}
		review.ID = 20
		reviews.On("GetByID", ctx, uint(20)).Return(review, nil)
		reviews.On("Delete", ctx, uint(20)).Return(nil)

		svc := newReviewService(reviews, new(MockFoodRepository))
		require.NoError(t, svc.Delete(ctx, 1, 20))
		reviews.AssertExpectations(t)
	})
}
