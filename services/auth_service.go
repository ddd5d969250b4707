package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}

	return config.DB.Create(&user).Error
}

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

func FindUserByID(id uint) (models.User, error) {
	var user models.User
	result := config.DB.First(&user, id)
	if result.Error != nil {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}
