package models

import (
	"time"

	"gorm.io/gorm"
)

// User carries both the account and the health profile. Soft-deleted via
// gorm.Model's DeletedAt, so a profile is never hard-removed.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	Gender    string
	BirthDate *time.Time
	Height    float64 // cm
	Weight    float64 // kg

	HealthGoals       string `gorm:"type:text"` // comma-separated tags
	ChronicConditions string `gorm:"type:text"` // comma-separated tags
	ProfilePicture    string

	MFAEnabled bool
	MFACode    string
	ResetToken string
}
