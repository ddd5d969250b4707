package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{"normal adult", 175, 70, 22.86, false},
		{"zero height", 0, 70, 0, true},
		{"zero weight", 175, 0, 0, true},
		{"implausible height", 300, 70, 0, true},
		{"implausible weight", 175, 500, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMI(tt.heightCm, tt.weightKg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CalculateBMI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 0.01 {
				t.Errorf("CalculateBMI() = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17, "Underweight"},
		{22, "Normal weight"},
		{27, "Overweight"},
		{32, "Obesity class I"},
		{37, "Obesity class II"},
		{45, "Obesity class III"},
	}

	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}
