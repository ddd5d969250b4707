package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/engine"
	"backend/models"
	"backend/utils"
)

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type MealInput struct {
	Date      string   `json:"date"` // YYYY-MM-DD
	MealType  string   `json:"meal_type"`
	FoodItems []string `json:"food_items"`
	Calories  *float64 `json:"calories"`
	Protein   *float64 `json:"protein"`
	Carbs     *float64 `json:"carbs"`
	Fat       *float64 `json:"fat"`
	Notes     string   `json:"notes"`
}

func parseDay(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	return d, nil
}

func AddMeal(userID uint, input MealInput) (*models.Meal, error) {
	if !mealTypes[input.MealType] {
		return nil, errors.New("meal_type must be breakfast, lunch, dinner or snack")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return nil, err
	}

	meal := models.Meal{
		UserID:    userID,
		Date:      day,
		MealType:  input.MealType,
		FoodItems: models.JoinList(input.FoodItems),
		Calories:  input.Calories,
		Protein:   input.Protein,
		Carbs:     input.Carbs,
		Fat:       input.Fat,
		Notes:     input.Notes,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func ListMealsByDate(userID uint, date time.Time) ([]models.Meal, error) {
	day := dayStartLocal(date)
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.Add(24*time.Hour)).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func UpdateMeal(userID, mealID uint, input MealInput) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	if !mealTypes[input.MealType] {
		return nil, errors.New("meal_type must be breakfast, lunch, dinner or snack")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return nil, err
	}

	meal.Date = day
	meal.MealType = input.MealType
	meal.FoodItems = models.JoinList(input.FoodItems)
	meal.Calories = input.Calories
	meal.Protein = input.Protein
	meal.Carbs = input.Carbs
	meal.Fat = input.Fat
	meal.Notes = input.Notes

	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func DeleteMeal(userID, mealID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

// DailyMealTotals loads one day's meals and folds them through the
// engine's aggregator.
func DailyMealTotals(userID uint, date time.Time) (engine.Totals, []models.Meal, error) {
	meals, err := ListMealsByDate(userID, date)
	if err != nil {
		return engine.Totals{}, nil, err
	}
	return engine.DailyTotals(meals), meals, nil
}

// SuggestFoodLabels runs the meal photo through Rekognition and returns
// candidate food_items entries.
func SuggestFoodLabels(base64Image string) ([]string, error) {
	return utils.DetectFoodLabels(base64Image)
}
