package models

import (
	"time"

	"gorm.io/gorm"
)

// Medication is a course of doses. Frequency is informational only; the
// schedule comes from ReminderTimes, a comma-separated list of "HH:MM"
// wall-clock values. A nil EndDate means the course is open-ended.
type Medication struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Dosage    string
	Frequency string // daily, twice_daily, weekly, as_needed, ...

	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time

	ReminderTimes string `gorm:"type:text"`
	Notes         string
}

func (m *Medication) ReminderTimeList() []string {
	return SplitList(m.ReminderTimes)
}
