package models

import (
	"time"

	"gorm.io/gorm"
)

// Food is a single logged entry. Date is stored in UTC; macro fields are
// grams and calories kcal, defaulting to 0 when the client omits them.
type Food struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"userId"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	Name     string    `gorm:"not null" json:"name"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Calories float64   `json:"calories"`
	Image    string    `gorm:"type:text" json:"image"`
}
