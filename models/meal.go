package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is one logged meal for a calendar day. Macro fields are pointers
// because the user may log a meal without nutrition numbers; aggregation
// treats nil as zero.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"`
	MealType string    `gorm:"not null"` // breakfast|lunch|dinner|snack

	FoodItems string `gorm:"type:text"` // comma-separated labels
	Calories  *float64
	Protein   *float64 // g
	Carbs     *float64 // g
	Fat       *float64 // g
	Notes     string
}

func (m *Meal) FoodItemList() []string {
	return SplitList(m.FoodItems)
}
