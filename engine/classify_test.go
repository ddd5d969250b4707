package engine

import (
	"testing"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestClassifyOccurrence_MonotonicOverTheDay(t *testing.T) {
	// Reminder at 08:00 with the default ±30-minute window.
	day := date(2026, 5, 20)
	const minute = 8 * 60

	tests := []struct {
		name string
		now  time.Time
		want OccurrenceStatus
	}{
		{"an hour before", at(2026, 5, 20, 7, 0), StatusUpcoming},
		{"just before the window opens", at(2026, 5, 20, 7, 29), StatusUpcoming},
		{"window edge is inclusive", at(2026, 5, 20, 7, 30), StatusDue},
		{"exactly on time", at(2026, 5, 20, 8, 0), StatusDue},
		{"late inside the window", at(2026, 5, 20, 8, 29), StatusDue},
		{"closing edge is inclusive", at(2026, 5, 20, 8, 30), StatusDue},
		{"past the window", at(2026, 5, 20, 9, 1), StatusElapsed},
		{"end of day", at(2026, 5, 20, 23, 59), StatusElapsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyOccurrence(minute, day, tt.now, 30*time.Minute)
			if got != tt.want {
				t.Errorf("ClassifyOccurrence(08:00 at %s) = %q, want %q",
					tt.now.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestClassifyOccurrence_CustomWindow(t *testing.T) {
	day := date(2026, 5, 20)
	got := ClassifyOccurrence(8*60, day, at(2026, 5, 20, 8, 12), 10*time.Minute)
	if got != StatusElapsed {
		t.Errorf("12 minutes past with a 10-minute window = %q, want elapsed", got)
	}
}

func TestClassifyCourse(t *testing.T) {
	now := at(2026, 5, 20, 12, 0)
	end := date(2026, 5, 19)
	endToday := date(2026, 5, 20)

	tests := []struct {
		name string
		med  models.Medication
		want CourseStatus
	}{
		{"inside window", med(1, "a", date(2026, 5, 1), nil, ""), CourseActive},
		{"starts today", med(1, "a", date(2026, 5, 20), nil, ""), CourseActive},
		{"ends today", med(1, "a", date(2026, 5, 1), &endToday, ""), CourseActive},
		{"ended yesterday", med(1, "a", date(2026, 5, 1), &end, ""), CourseExpired},
		{"starts tomorrow", med(1, "a", date(2026, 5, 21), nil, ""), CourseNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyCourse(tt.med, now); got != tt.want {
				t.Errorf("ClassifyCourse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func appt(id uint, day time.Time, timeOfDay string) models.Appointment {
	return models.Appointment{
		Model:     gorm.Model{ID: id},
		Title:     "checkup",
		Date:      day,
		TimeOfDay: timeOfDay,
	}
}

func TestClassifyAppointment(t *testing.T) {
	now := at(2026, 5, 20, 10, 0)

	tests := []struct {
		name string
		a    models.Appointment
		want AppointmentStatus
	}{
		{"later today", appt(1, date(2026, 5, 20), "15:00"), AppointmentUpcoming},
		{"exactly now counts as upcoming", appt(2, date(2026, 5, 20), "10:00"), AppointmentUpcoming},
		{"earlier today", appt(3, date(2026, 5, 20), "08:00"), AppointmentPast},
		{"next week", appt(4, date(2026, 5, 27), "09:00"), AppointmentUpcoming},
		{"last month", appt(5, date(2026, 4, 2), "09:00"), AppointmentPast},
		{"unparseable time defaults to midnight", appt(6, date(2026, 5, 20), "whenever"), AppointmentPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyAppointment(tt.a, now); got != tt.want {
				t.Errorf("ClassifyAppointment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPartitionAppointments_TotalPartitionAndOrder(t *testing.T) {
	now := at(2026, 5, 20, 10, 0)
	input := []models.Appointment{
		appt(1, date(2026, 5, 25), "09:00"),
		appt(2, date(2026, 5, 10), "14:00"),
		appt(3, date(2026, 5, 20), "09:30"),
		appt(4, date(2026, 5, 20), "16:00"),
		appt(5, date(2026, 5, 18), "08:00"),
	}

	upcoming, past := PartitionAppointments(input, now)

	if len(upcoming)+len(past) != len(input) {
		t.Fatalf("partition lost entries: %d + %d != %d",
			len(upcoming), len(past), len(input))
	}
	seen := map[uint]bool{}
	for _, a := range append(append([]models.Appointment{}, upcoming...), past...) {
		if seen[a.ID] {
			t.Errorf("appointment %d appears in both groups", a.ID)
		}
		seen[a.ID] = true
	}

	// Upcoming ascending: 4 (today 16:00) then 1 (the 25th).
	if upcoming[0].ID != 4 || upcoming[1].ID != 1 {
		t.Errorf("upcoming order = %v, want [4 1]", ids(upcoming))
	}
	// Past descending: most recently past first → 3, 5, 2.
	wantPast := []uint{3, 5, 2}
	for i, w := range wantPast {
		if past[i].ID != w {
			t.Errorf("past order = %v, want %v", ids(past), wantPast)
			break
		}
	}
}

func TestPartitionAppointments_Empty(t *testing.T) {
	upcoming, past := PartitionAppointments(nil, at(2026, 5, 20, 10, 0))
	if len(upcoming) != 0 || len(past) != 0 {
		t.Errorf("empty input produced %d upcoming, %d past", len(upcoming), len(past))
	}
}

func ids(appts []models.Appointment) []uint {
	out := make([]uint, len(appts))
	for i, a := range appts {
		out[i] = a.ID
	}
	return out
}
