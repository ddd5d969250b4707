package controllers

import (
	"net/http"

	"backend/engine"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Engine *engine.Engine
}

func NewAppointmentController(eng *engine.Engine) *AppointmentController {
	return &AppointmentController{Engine: eng}
}

func (ac *AppointmentController) Add(c *gin.Context) {
	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := services.AddAppointment(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// List returns the user's appointments split into upcoming (soonest
// first) and past (most recently past first).
func (ac *AppointmentController) List(c *gin.Context) {
	upcoming, past, err := services.PartitionedAppointments(c.GetUint("userID"), ac.Engine)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

func (ac *AppointmentController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := services.UpdateAppointment(c.GetUint("userID"), id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (ac *AppointmentController) MarkReminderSent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.MarkReminderSent(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reminder marked sent"})
}

func (ac *AppointmentController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteAppointment(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
