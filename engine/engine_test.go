package engine

import (
	"testing"
	"time"

	"backend/models"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestEngine_ScheduleTodayUsesClock(t *testing.T) {
	now := at(2026, 5, 20, 8, 10)
	e := New(fixedClock{now}, Options{})

	meds := []models.Medication{
		med(1, "metformin", date(2026, 5, 1), nil, "08:00,20:00"),
		med(2, "expired", date(2026, 4, 1), ptrDate(2026, 4, 30), "08:00"),
	}

	got := e.ScheduleToday(meds)
	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences (expired course excluded), got %d", len(got))
	}
	if got[0].Status != StatusDue {
		t.Errorf("08:00 at 08:10 = %q, want due", got[0].Status)
	}
	if got[1].Status != StatusUpcoming {
		t.Errorf("20:00 at 08:10 = %q, want upcoming", got[1].Status)
	}
}

func TestEngine_RepeatedQueriesAgreeWithinTheMinute(t *testing.T) {
	// Expanding and classifying twice with the same instant must yield
	// identical statuses; the derivation holds no hidden state.
	now := at(2026, 5, 20, 9, 59)
	e := New(fixedClock{now}, Options{})

	meds := []models.Medication{
		med(1, "a", date(2026, 5, 1), nil, "06:00,10:15,22:00"),
	}

	first := e.ScheduleToday(meds)
	second := e.ScheduleToday(meds)
	for i := range first {
		if first[i].Status != second[i].Status {
			t.Errorf("occurrence %d status changed between queries: %q vs %q",
				i, first[i].Status, second[i].Status)
		}
	}
}

func TestEngine_NilClockFallsBackToRealClock(t *testing.T) {
	e := New(nil, Options{})
	if e.clock == nil {
		t.Fatal("engine left with nil clock")
	}
}

func TestEngine_CourseStatus(t *testing.T) {
	e := New(fixedClock{at(2026, 5, 20, 12, 0)}, Options{})
	m := med(1, "a", date(2026, 5, 21), nil, "")
	if got := e.CourseStatus(m); got != CourseNotStarted {
		t.Errorf("CourseStatus = %q, want not_yet_started", got)
	}
}

func ptrDate(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}
