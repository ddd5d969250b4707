package services

import (
	"errors"

	"backend/config"
	"backend/engine"
	"backend/models"
)

type MedicationInput struct {
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	Frequency     string   `json:"frequency"`
	StartDate     string   `json:"start_date"` // YYYY-MM-DD
	EndDate       string   `json:"end_date"`   // optional
	ReminderTimes []string `json:"reminder_times"`
	Notes         string   `json:"notes"`
}

func (in MedicationInput) toModel(userID uint) (models.Medication, error) {
	if in.Name == "" {
		return models.Medication{}, errors.New("name is required")
	}
	start, err := parseDay(in.StartDate)
	if err != nil {
		return models.Medication{}, errors.New("start_date must be YYYY-MM-DD")
	}

	med := models.Medication{
		UserID:        userID,
		Name:          in.Name,
		Dosage:        in.Dosage,
		Frequency:     in.Frequency,
		StartDate:     start,
		ReminderTimes: models.JoinList(in.ReminderTimes),
		Notes:         in.Notes,
	}
	if in.EndDate != "" {
		end, err := parseDay(in.EndDate)
		if err != nil {
			return models.Medication{}, errors.New("end_date must be YYYY-MM-DD")
		}
		if end.Before(start) {
			return models.Medication{}, errors.New("end_date before start_date")
		}
		med.EndDate = &end
	}
	return med, nil
}

func AddMedication(userID uint, input MedicationInput) (*models.Medication, error) {
	med, err := input.toModel(userID)
	if err != nil {
		return nil, err
	}
	if err := config.DB.Create(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

// MedicationView is a medication plus its derived course status.
type MedicationView struct {
	models.Medication
	Status engine.CourseStatus `json:"status"`
}

// ListMedications returns all of a user's medications, newest first,
// each tagged active / expired / not_yet_started.
func ListMedications(userID uint, eng *engine.Engine) ([]MedicationView, error) {
	var meds []models.Medication
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meds).Error
	if err != nil {
		return nil, err
	}

	views := make([]MedicationView, 0, len(meds))
	for _, m := range meds {
		views = append(views, MedicationView{Medication: m, Status: eng.CourseStatus(m)})
	}
	return views, nil
}

func UpdateMedication(userID, medID uint, input MedicationInput) (*models.Medication, error) {
	var med models.Medication
	if err := config.DB.
		Where("id = ? AND user_id = ?", medID, userID).
		First(&med).Error; err != nil {
		return nil, err
	}

	updated, err := input.toModel(userID)
	if err != nil {
		return nil, err
	}
	updated.Model = med.Model
	if err := config.DB.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteMedication(userID, medID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", medID, userID).
		Delete(&models.Medication{}).Error
}

// TodaySchedule expands every medication active today into its reminder
// occurrences and classifies each against the current instant.
// Medications are loaded oldest first so occurrences at the same minute
// keep creation order.
func TodaySchedule(userID uint, eng *engine.Engine) ([]engine.Occurrence, error) {
	var meds []models.Medication
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&meds).Error
	if err != nil {
		return nil, err
	}
	return eng.ScheduleToday(meds), nil
}
