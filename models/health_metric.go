package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthMetric is the daily tracker entry. At most one row per
// (user_id, date); writes go through an upsert keyed on that pair.
type HealthMetric struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_metric_user_date;not null"`
	Date   time.Time `gorm:"uniqueIndex:idx_metric_user_date;not null"`

	Weight      *float64 // kg
	SleepHours  *float64
	HeartRate   *int // bpm
	Steps       *int
	WaterIntake *float64 // glasses
	Mood        string
	StressLevel *int // 1..10
	Notes       string
}
