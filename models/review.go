package models

import (
	"gorm.io/gorm"
)

// Allowed values for Review.Taste and Review.Digestion.
const (
	ScaleBad   = "bad"
	ScaleOK    = "ok"
	ScaleGreat = "great"
)

// Review is an author's verdict on one of their foods. Rate is 1..5.
type Review struct {
	gorm.Model
	FoodID    uint   `gorm:"index;not null" json:"foodId"`
	AuthorID  uint   `gorm:"index;not null" json:"authorId"`
	Taste     string `gorm:"size:8;not null" json:"taste"`
	Digestion string `gorm:"size:8;not null" json:"digestion"`
	Rate      int    `gorm:"not null" json:"rate"`
}

// ValidScale reports whether s is one of the taste/digestion values.
func ValidScale(s string) bool {
	return s == ScaleBad || s == ScaleOK || s == ScaleGreat
}
