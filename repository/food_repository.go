package repository

import (
	"context"
	"errors"
	"time"

	"github.com/iamchrisas/macrotracker-back/models"

	"gorm.io/gorm"
)

type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a gorm-backed FoodRepository.
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Food, error) {
	if len(ids) == 0 {
		return []models.Food{}, nil
	}
	var foods []models.Food
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error
	return foods, err
}

func (r *foodRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&foods).Error
	return foods, err
}

func (r *foodRepository) ListByOwnerInRange(ctx context.Context, ownerID uint, from, to time.Time) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", ownerID, from, to).
		Order("date ASC").
		Find(&foods).Error
	return foods, err
}

func (r *foodRepository) Create(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) Update(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Food{}, id).Error
}
