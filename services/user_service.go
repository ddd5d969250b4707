package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FullName          string   `json:"full_name"`
	Gender            string   `json:"gender"`
	BirthDate         string   `json:"birth_date"` // YYYY-MM-DD
	Height            float64  `json:"height"`
	Weight            float64  `json:"weight"`
	HealthGoals       []string `json:"health_goals"`
	ChronicConditions []string `json:"chronic_conditions"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	birth := ""
	if user.BirthDate != nil {
		age = utils.CalculateAge(*user.BirthDate)
		birth = user.BirthDate.Format("2006-01-02")
	}

	profile := map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"full_name":          user.FullName,
		"gender":             user.Gender,
		"birth_date":         birth,
		"age":                age,
		"height":             user.Height,
		"weight":             user.Weight,
		"health_goals":       models.SplitList(user.HealthGoals),
		"chronic_conditions": models.SplitList(user.ChronicConditions),
		"profile_picture":    user.ProfilePicture,
		"mfa_enabled":        user.MFAEnabled,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	user.FullName = input.FullName
	user.Gender = input.Gender
	user.Height = input.Height
	user.Weight = input.Weight
	user.HealthGoals = models.JoinList(input.HealthGoals)
	user.ChronicConditions = models.JoinList(input.ChronicConditions)

	if input.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", input.BirthDate)
		if err != nil {
			return errors.New("birth_date must be YYYY-MM-DD")
		}
		user.BirthDate = &birth
	}

	return config.DB.Save(&user).Error
}

// UpdateAvatar uploads the base64 image to S3 and stores the URL.
func UpdateAvatar(userID uint, base64Image string) (string, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return "", errors.New("user not found")
	}

	url, err := utils.UploadBase64ImageToS3(base64Image, user.Email)
	if err != nil {
		return "", err
	}

	user.ProfilePicture = url
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}
	return url, nil
}
