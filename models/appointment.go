package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment is a scheduled visit. Date holds the calendar day and
// TimeOfDay the "HH:MM" wall-clock time; the two are combined when the
// appointment is classified as upcoming or past.
type Appointment struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Title  string `gorm:"not null"`

	DoctorName string
	Specialty  string
	Location   string

	Date      time.Time `gorm:"index;not null"`
	TimeOfDay string    `gorm:"not null"` // "HH:MM"
	Notes     string

	// Written by callers when they deliver a reminder; nothing in this
	// backend sends one.
	ReminderSent bool
}
