package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type MetricInput struct {
	Weight      *float64 `json:"weight"`
	SleepHours  *float64 `json:"sleep_hours"`
	HeartRate   *int     `json:"heart_rate"`
	Steps       *int     `json:"steps"`
	WaterIntake *float64 `json:"water_intake"`
	Mood        string   `json:"mood"`
	StressLevel *int     `json:"stress_level"`
	Notes       string   `json:"notes"`
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// UpsertMetric writes the single tracker entry for (user, date). The
// unique index on that pair backs the at-most-one-per-day rule.
func UpsertMetric(userID uint, date time.Time, input MetricInput) (*models.HealthMetric, error) {
	if input.StressLevel != nil && (*input.StressLevel < 1 || *input.StressLevel > 10) {
		return nil, errors.New("stress_level must be between 1 and 10")
	}

	day := dayStartLocal(date)
	metric := models.HealthMetric{
		UserID:      userID,
		Date:        day,
		Weight:      input.Weight,
		SleepHours:  input.SleepHours,
		HeartRate:   input.HeartRate,
		Steps:       input.Steps,
		WaterIntake: input.WaterIntake,
		Mood:        input.Mood,
		StressLevel: input.StressLevel,
		Notes:       input.Notes,
	}

	err := config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(metric).
		FirstOrCreate(&metric).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

func GetMetric(userID uint, date time.Time) (*models.HealthMetric, error) {
	var metric models.HealthMetric
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, dayStartLocal(date)).
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no entry for that day is not an error
		}
		return nil, err
	}
	return &metric, nil
}

func ListMetrics(userID uint, from, to time.Time) ([]models.HealthMetric, error) {
	var metrics []models.HealthMetric
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?",
			userID, dayStartLocal(from), dayStartLocal(to).Add(24*time.Hour)).
		Order("date DESC").
		Find(&metrics).Error
	return metrics, err
}
