package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListArticles(c *gin.Context) {
	articles, err := services.ListArticles(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func GetArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	article, err := services.GetArticle(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func ListExercises(c *gin.Context) {
	exercises, err := services.ListExercises(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

func ListNutritionPlans(c *gin.Context) {
	plans, err := services.ListNutritionPlans(c.Query("goal"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
