package models

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
		{"single value", "08:00", []string{"08:00"}},
		{"multiple values", "08:00,14:00,20:00", []string{"08:00", "14:00", "20:00"}},
		{"trims padding", " weight loss , better sleep ", []string{"weight loss", "better sleep"}},
		{"drops empty segments", "a,,b,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	items := []string{"diabetes", "hypertension"}
	if got := SplitList(JoinList(items)); !reflect.DeepEqual(got, items) {
		t.Errorf("round trip = %v, want %v", got, items)
	}
}

func TestMedicationReminderTimeList(t *testing.T) {
	m := Medication{ReminderTimes: "06:00,18:00"}
	got := m.ReminderTimeList()
	if len(got) != 2 || got[0] != "06:00" || got[1] != "18:00" {
		t.Errorf("ReminderTimeList() = %v", got)
	}
}
