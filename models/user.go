package models

import (
	"gorm.io/gorm"
)

// User holds the account and its daily intake goals. Goals default to 0,
// meaning "no goal set"; stats still compute against them.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`

	DailyProteinGoal float64 `json:"dailyProteinGoal"`
	DailyCarbGoal    float64 `json:"dailyCarbGoal"`
	DailyFatGoal     float64 `json:"dailyFatGoal"`
	DailyCalorieGoal float64 `json:"dailyCalorieGoal"`
	WeightGoal       float64 `json:"weightGoal"`
	CurrentWeight    float64 `json:"currentWeight"`
}
