package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// queryDate reads a ?date=YYYY-MM-DD parameter, defaulting to today.
func queryDate(c *gin.Context) (time.Time, bool) {
	s := c.Query("date")
	if s == "" {
		return time.Now(), true
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

func UpsertMetric(c *gin.Context) {
	var body struct {
		Date string `json:"date"` // optional; defaults to today
		services.MetricInput
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day := time.Now()
	if body.Date != "" {
		var err error
		day, err = time.ParseInLocation("2006-01-02", body.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
	}

	metric, err := services.UpsertMetric(c.GetUint("userID"), day, body.MetricInput)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metric)
}

func GetMetric(c *gin.Context) {
	day, ok := queryDate(c)
	if !ok {
		return
	}

	metric, err := services.GetMetric(c.GetUint("userID"), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if metric == nil {
		c.JSON(http.StatusOK, gin.H{"metric": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metric": metric})
}

func MetricHistory(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if s := c.Query("from"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = d
	}
	if s := c.Query("to"); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		to = d
	}

	metrics, err := services.ListMetrics(c.GetUint("userID"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
