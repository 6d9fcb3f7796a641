package services

import (
	"github.com/iamchrisas/macrotracker-back/models"
)

// Access control for single resources: a missing row is NOT_FOUND, a row
// owned by someone else is FORBIDDEN. Applied before every read of a
// single food, and before every update or delete of a food or review.
// A valid token for a different account never gets through.

func authorizeFood(food *models.Food, principalID uint) error {
	if food == nil {
		return models.ErrFoodNotFound
	}
	if food.UserID != principalID {
		return models.ErrForbidden
	}
	return nil
}

func authorizeReview(review *models.Review, principalID uint) error {
	if review == nil {
		return models.ErrReviewNotFound
	}
	if review.AuthorID != principalID {
		return models.ErrForbidden
	}
	return nil
}
