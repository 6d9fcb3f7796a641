package repository

import (
	"context"
	"time"

	"github.com/iamchrisas/macrotracker-back/models"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// GetByID retrieves a user by primary key. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Create inserts a new user.
	Create(ctx context.Context, user *models.User) error

	// Update writes the whole record back (read-modify-write).
	Update(ctx context.Context, user *models.User) error
}

// FoodRepository defines data access for food entries.
type FoodRepository interface {
	// GetByID retrieves a food entry by primary key. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uint) (*models.Food, error)

	// GetByIDs retrieves multiple food entries by their IDs.
	GetByIDs(ctx context.Context, ids []uint) ([]models.Food, error)

	// ListByOwner retrieves all entries of one owner, newest first.
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Food, error)

	// ListByOwnerInRange retrieves one owner's entries whose timestamp falls
	// inside the closed UTC interval [from, to], oldest first.
	ListByOwnerInRange(ctx context.Context, ownerID uint, from, to time.Time) ([]models.Food, error)

	// Create inserts a new food entry.
	Create(ctx context.Context, food *models.Food) error

	// Update writes the whole record back (read-modify-write).
	Update(ctx context.Context, food *models.Food) error

	// Delete removes a food entry by primary key.
	Delete(ctx context.Context, id uint) error
}

// ReviewRepository defines data access for reviews.
type ReviewRepository interface {
	// GetByID retrieves a review by primary key. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id uint) (*models.Review, error)

	// ListByAuthor retrieves all reviews written by one author.
	ListByAuthor(ctx context.Context, authorID uint) ([]models.Review, error)

	// ListByFood retrieves all reviews referencing one food entry.
	ListByFood(ctx context.Context, foodID uint) ([]models.Review, error)

	// Create inserts a new review.
	Create(ctx context.Context, review *models.Review) error

	// Update writes the whole record back (read-modify-write).
	Update(ctx context.Context, review *models.Review) error

	// Delete removes a review by primary key.
	Delete(ctx context.Context, id uint) error
}
