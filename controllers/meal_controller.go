package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func LogMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.AddMeal(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	day, ok := queryDate(c)
	if !ok {
		return
	}

	meals, err := services.ListMealsByDate(c.GetUint("userID"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func UpdateMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.UpdateMeal(c.GetUint("userID"), id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteMeal(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

// DailyTotals returns the nutrient sums for one day's meals.
func DailyTotals(c *gin.Context) {
	day, ok := queryDate(c)
	if !ok {
		return
	}

	totals, meals, err := services.DailyMealTotals(c.GetUint("userID"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":       day.Format("2006-01-02"),
		"totals":     totals,
		"meal_count": len(meals),
	})
}

// SuggestFoodLabels runs a meal photo through image recognition and
// returns candidate food items.
func SuggestFoodLabels(c *gin.Context) {
	var input struct {
		Image string `json:"image" binding:"required"` // data URI
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labels, err := services.SuggestFoodLabels(input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels})
}
