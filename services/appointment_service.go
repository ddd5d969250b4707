package services

import (
	"errors"

	"backend/config"
	"backend/engine"
	"backend/models"
)

type AppointmentInput struct {
	Title      string `json:"title"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Location   string `json:"location"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	Notes      string `json:"notes"`
}

func (in AppointmentInput) toModel(userID uint) (models.Appointment, error) {
	if in.Title == "" {
		return models.Appointment{}, errors.New("title is required")
	}
	day, err := parseDay(in.Date)
	if err != nil {
		return models.Appointment{}, err
	}
	if in.Time == "" {
		return models.Appointment{}, errors.New("time is required")
	}

	return models.Appointment{
		UserID:     userID,
		Title:      in.Title,
		DoctorName: in.DoctorName,
		Specialty:  in.Specialty,
		Location:   in.Location,
		Date:       day,
		TimeOfDay:  in.Time,
		Notes:      in.Notes,
	}, nil
}

func AddAppointment(userID uint, input AppointmentInput) (*models.Appointment, error) {
	appt, err := input.toModel(userID)
	if err != nil {
		return nil, err
	}
	if err := config.DB.Create(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// PartitionedAppointments loads the user's appointments and splits them
// into upcoming (soonest first) and past (most recently past first).
func PartitionedAppointments(userID uint, eng *engine.Engine) (upcoming, past []models.Appointment, err error) {
	var appts []models.Appointment
	err = config.DB.
		Where("user_id = ?", userID).
		Find(&appts).Error
	if err != nil {
		return nil, nil, err
	}
	upcoming, past = eng.PartitionAppointments(appts)
	return upcoming, past, nil
}

func UpdateAppointment(userID, apptID uint, input AppointmentInput) (*models.Appointment, error) {
	var appt models.Appointment
	if err := config.DB.
		Where("id = ? AND user_id = ?", apptID, userID).
		First(&appt).Error; err != nil {
		return nil, err
	}

	updated, err := input.toModel(userID)
	if err != nil {
		return nil, err
	}
	updated.Model = appt.Model
	updated.ReminderSent = appt.ReminderSent
	if err := config.DB.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkReminderSent flags an appointment once a caller has delivered its
// reminder. Nothing in this backend sends reminders itself.
func MarkReminderSent(userID, apptID uint) error {
	return config.DB.
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", apptID, userID).
		Update("reminder_sent", true).Error
}

func DeleteAppointment(userID, apptID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", apptID, userID).
		Delete(&models.Appointment{}).Error
}
