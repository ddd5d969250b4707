package controllers

import (
	"net/http"

	"backend/engine"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MedicationController struct {
	Engine *engine.Engine
}

func NewMedicationController(eng *engine.Engine) *MedicationController {
	return &MedicationController{Engine: eng}
}

func (mc *MedicationController) Add(c *gin.Context) {
	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := services.AddMedication(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, med)
}

func (mc *MedicationController) List(c *gin.Context) {
	meds, err := services.ListMedications(c.GetUint("userID"), mc.Engine)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"medications": meds})
}

// Today returns the expanded reminder schedule for the current day,
// each occurrence tagged upcoming, due or elapsed.
func (mc *MedicationController) Today(c *gin.Context) {
	occurrences, err := services.TodaySchedule(c.GetUint("userID"), mc.Engine)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": occurrences})
}

func (mc *MedicationController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := services.UpdateMedication(c.GetUint("userID"), id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

func (mc *MedicationController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteMedication(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication deleted"})
}
