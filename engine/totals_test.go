package engine

import (
	"math/rand"
	"testing"
	"time"

	"backend/models"
)

func f(v float64) *float64 { return &v }

func TestDailyTotals(t *testing.T) {
	day := date(2026, 5, 20)

	tests := []struct {
		name  string
		meals []models.Meal
		want  Totals
	}{
		{
			name:  "empty set is all zeros",
			meals: nil,
			want:  Totals{},
		},
		{
			name: "sums across meals",
			meals: []models.Meal{
				{Date: day, MealType: "breakfast", Calories: f(400), Protein: f(20), Carbs: f(50), Fat: f(12)},
				{Date: day, MealType: "lunch", Calories: f(650), Protein: f(35), Carbs: f(70), Fat: f(20)},
				{Date: day, MealType: "snack", Calories: f(150), Protein: f(5), Carbs: f(25), Fat: f(3)},
			},
			want: Totals{Calories: 1200, Protein: 60, Carbs: 145, Fat: 35},
		},
		{
			name: "nil fields count as zero",
			meals: []models.Meal{
				{Date: day, MealType: "breakfast", Calories: f(300)},
				{Date: day, MealType: "dinner", Protein: f(40), Fat: f(15)},
			},
			want: Totals{Calories: 300, Protein: 40, Fat: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyTotals(tt.meals); got != tt.want {
				t.Errorf("DailyTotals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDailyTotals_OrderIndependent(t *testing.T) {
	day := date(2026, 5, 20)
	meals := []models.Meal{
		{Date: day, MealType: "breakfast", Calories: f(400), Protein: f(20)},
		{Date: day, MealType: "lunch", Calories: f(650), Carbs: f(70)},
		{Date: day, MealType: "dinner", Calories: f(550), Fat: f(18)},
		{Date: day, MealType: "snack"},
	}
	want := DailyTotals(meals)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 10; i++ {
		shuffled := append([]models.Meal{}, meals...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := DailyTotals(shuffled); got != want {
			t.Fatalf("permutation %d changed totals: %+v != %+v", i, got, want)
		}
	}
}
