package controllers

import (
	"net/http"
	"time"

	"backend/engine"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Engine *engine.Engine
}

func NewDashboardController(eng *engine.Engine) *DashboardController {
	return &DashboardController{Engine: eng}
}

// Today composes the day's derived state in one response: the tracker
// entry, nutrition totals, the medication schedule with statuses, and
// the next upcoming appointment. Everything is recomputed on each call;
// nothing here is cached or stored.
func (dc *DashboardController) Today(c *gin.Context) {
	userID := c.GetUint("userID")
	now := time.Now()

	metric, err := services.GetMetric(userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals, meals, err := services.DailyMealTotals(userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	schedule, err := services.TodaySchedule(userID, dc.Engine)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	upcoming, _, err := services.PartitionedAppointments(userID, dc.Engine)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"date":       now.Format("2006-01-02"),
		"metric":     metric,
		"totals":     totals,
		"meal_count": len(meals),
		"schedule":   schedule,
	}
	if len(upcoming) > 0 {
		resp["next_appointment"] = upcoming[0]
	}

	c.JSON(http.StatusOK, resp)
}
