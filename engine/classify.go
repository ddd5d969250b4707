package engine

import (
	"sort"
	"time"

	"backend/models"
)

// OccurrenceStatus is the time-relative state of one reminder
// occurrence.
type OccurrenceStatus string

const (
	StatusUpcoming OccurrenceStatus = "upcoming"
	StatusDue      OccurrenceStatus = "due"
	StatusElapsed  OccurrenceStatus = "elapsed"
)

// CourseStatus is the state of a whole medication course relative to
// today.
type CourseStatus string

const (
	CourseActive     CourseStatus = "active"
	CourseExpired    CourseStatus = "expired"
	CourseNotStarted CourseStatus = "not_yet_started"
)

// AppointmentStatus is past or upcoming, nothing in between.
type AppointmentStatus string

const (
	AppointmentUpcoming AppointmentStatus = "upcoming"
	AppointmentPast     AppointmentStatus = "past"
)

// ClassifyOccurrence assigns a status to a reminder scheduled at
// minuteOfDay on the given day: due while now sits inside the ±window
// interval around the scheduled instant (inclusive at both edges),
// elapsed once now is past that interval, upcoming before it. The
// status is derived fresh on every call; nothing is stored.
func ClassifyOccurrence(minuteOfDay int, day, now time.Time, window time.Duration) OccurrenceStatus {
	sched := time.Date(day.Year(), day.Month(), day.Day(),
		minuteOfDay/60, minuteOfDay%60, 0, 0, now.Location())
	switch {
	case now.Before(sched.Add(-window)):
		return StatusUpcoming
	case now.After(sched.Add(window)):
		return StatusElapsed
	default:
		return StatusDue
	}
}

// ClassifyCourse reports whether today falls inside the medication's
// start/end window.
func ClassifyCourse(med models.Medication, now time.Time) CourseStatus {
	today := dateOnly(now)
	if dateOnly(med.StartDate).After(today) {
		return CourseNotStarted
	}
	if med.EndDate != nil && dateOnly(*med.EndDate).Before(today) {
		return CourseExpired
	}
	return CourseActive
}

// AppointmentInstant combines an appointment's date and "HH:MM" time
// into one instant in now's location. An unparseable time defaults to
// midnight rather than failing; it is persisted data the engine cannot
// repair.
func AppointmentInstant(a models.Appointment, loc *time.Location) time.Time {
	min, ok := parseTimeOfDay(a.TimeOfDay)
	if !ok {
		min = 0
	}
	d := a.Date
	return time.Date(d.Year(), d.Month(), d.Day(), min/60, min%60, 0, 0, loc)
}

// ClassifyAppointment: upcoming while the appointment instant is not
// earlier than now, past otherwise.
func ClassifyAppointment(a models.Appointment, now time.Time) AppointmentStatus {
	if AppointmentInstant(a, now.Location()).Before(now) {
		return AppointmentPast
	}
	return AppointmentUpcoming
}

// PartitionAppointments splits the list into upcoming and past. Every
// input lands in exactly one group. Upcoming is sorted soonest first;
// past is sorted most recently past first — the order the views promise.
func PartitionAppointments(appts []models.Appointment, now time.Time) (upcoming, past []models.Appointment) {
	loc := now.Location()
	for _, a := range appts {
		if ClassifyAppointment(a, now) == AppointmentUpcoming {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return AppointmentInstant(upcoming[i], loc).Before(AppointmentInstant(upcoming[j], loc))
	})
	sort.SliceStable(past, func(i, j int) bool {
		return AppointmentInstant(past[i], loc).After(AppointmentInstant(past[j], loc))
	})
	return upcoming, past
}
