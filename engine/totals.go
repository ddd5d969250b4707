package engine

import "backend/models"

// Totals is the nutrient sum of a set of meals.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyTotals sums the macro fields across meals, treating absent
// values as zero. Order never matters and re-running over the same set
// yields the same result; an empty set gives all-zero totals.
func DailyTotals(meals []models.Meal) Totals {
	var t Totals
	for _, m := range meals {
		t.Calories += deref(m.Calories)
		t.Protein += deref(m.Protein)
		t.Carbs += deref(m.Carbs)
		t.Fat += deref(m.Fat)
	}
	return t
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
