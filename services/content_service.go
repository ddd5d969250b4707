package services

import (
	"backend/config"
	"backend/models"
)

// Reference content is read-only; rows are seeded outside the API.

func ListArticles(category string) ([]models.HealthArticle, error) {
	var articles []models.HealthArticle
	q := config.DB.Order("published_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&articles).Error
	return articles, err
}

func GetArticle(id uint) (*models.HealthArticle, error) {
	var article models.HealthArticle
	if err := config.DB.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func ListExercises(category string) ([]models.MentalExercise, error) {
	var exercises []models.MentalExercise
	q := config.DB.Order("title ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&exercises).Error
	return exercises, err
}

func GetExercise(id uint) (*models.MentalExercise, error) {
	var exercise models.MentalExercise
	if err := config.DB.First(&exercise, id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func ListNutritionPlans(goal string) ([]models.NutritionPlan, error) {
	var plans []models.NutritionPlan
	q := config.DB.Order("title ASC")
	if goal != "" {
		q = q.Where("goal = ?", goal)
	}
	err := q.Find(&plans).Error
	return plans, err
}
