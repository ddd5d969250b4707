package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"backend/models"
)

// Occurrence is one concrete reminder instance for a medication on a
// specific day.
type Occurrence struct {
	MedicationID uint             `json:"medication_id"`
	Name         string           `json:"name"`
	Dosage       string           `json:"dosage,omitempty"`
	TimeOfDay    string           `json:"time"` // normalized "HH:MM"
	Status       OccurrenceStatus `json:"status,omitempty"`

	minuteOfDay int
}

// MinuteOfDay reports the occurrence's scheduled time as minutes after
// midnight.
func (o Occurrence) MinuteOfDay() int { return o.minuteOfDay }

// parseTimeOfDay accepts "HH:MM" (or "H:MM") wall-clock values. Returns
// minutes after midnight, or ok=false for anything unparseable.
func parseTimeOfDay(s string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ActiveOn reports whether the medication course covers day d:
// start_date ≤ d and (no end_date or end_date ≥ d). Comparison is by
// calendar date, not instant.
func ActiveOn(med models.Medication, d time.Time) bool {
	day := dateOnly(d)
	if dateOnly(med.StartDate).After(day) {
		return false
	}
	if med.EndDate != nil && dateOnly(*med.EndDate).Before(day) {
		return false
	}
	return true
}

// ExpandDay turns one medication into its reminder occurrences for day
// d: one per reminder time when the course is active on d, none
// otherwise. Reminder entries that do not parse as "HH:MM" are persisted
// user data this engine cannot repair, so they are skipped, not raised.
func ExpandDay(med models.Medication, d time.Time) []Occurrence {
	if !ActiveOn(med, d) {
		return nil
	}
	var out []Occurrence
	for _, ts := range med.ReminderTimeList() {
		min, ok := parseTimeOfDay(ts)
		if !ok {
			continue
		}
		out = append(out, Occurrence{
			MedicationID: med.ID,
			Name:         med.Name,
			Dosage:       med.Dosage,
			TimeOfDay:    fmt.Sprintf("%02d:%02d", min/60, min%60),
			minuteOfDay:  min,
		})
	}
	return out
}

// ScheduleDay merges the occurrences of all medications for day d,
// sorted ascending by time-of-day, and classifies each against now.
// Ties at the same minute keep the input (creation) order.
func ScheduleDay(meds []models.Medication, d, now time.Time, opts Options) []Occurrence {
	var all []Occurrence
	for _, med := range meds {
		all = append(all, ExpandDay(med, d)...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].minuteOfDay < all[j].minuteOfDay
	})
	window := opts.dueWindow()
	for i := range all {
		all[i].Status = ClassifyOccurrence(all[i].minuteOfDay, d, now, window)
	}
	return all
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
