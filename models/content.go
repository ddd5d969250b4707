package models

import (
	"time"

	"gorm.io/gorm"
)

// Read-only reference content. Not user-owned; seeded out of band.

type HealthArticle struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Content     string `gorm:"type:text;not null"`
	Author      string
	Category    string `gorm:"index"`
	Tags        string `gorm:"type:text"` // comma-separated
	ImageURL    string
	PublishedAt time.Time
	IsFeatured  bool
}

type MentalExercise struct {
	gorm.Model
	Title           string `gorm:"not null"`
	Description     string `gorm:"type:text"`
	Category        string `gorm:"index"`
	DurationMinutes *int   // nil: the session timer applies its default length
	Instructions    string `gorm:"type:text"`
	AudioURL        string
	ImageURL        string
}

type NutritionPlan struct {
	gorm.Model
	Title             string `gorm:"not null"`
	Description       string `gorm:"type:text"`
	Goal              string `gorm:"index"`
	DailyCalories     *float64
	ProteinPercentage *float64
	CarbsPercentage   *float64
	FatPercentage     *float64
	MealSuggestions   string `gorm:"type:text"`
	ImageURL          string
}
