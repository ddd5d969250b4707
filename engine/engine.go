// Package engine derives time-relative state from persisted health
// records: which medication doses are due right now, whether an
// appointment is upcoming or past, what today's nutrition totals are,
// and how far a guided exercise session has progressed.
//
// Apart from Session, every operation is a pure function of its inputs
// plus an explicit instant, so callers can re-derive state on every
// query. The package performs no I/O and never mutates the records it
// is given.
package engine

import (
	"time"

	"backend/models"
)

// Options holds the tunable thresholds. The zero value is usable;
// missing fields fall back to the defaults below.
type Options struct {
	// DueWindow is the half-width of the interval around a scheduled
	// reminder within which a dose counts as due.
	DueWindow time.Duration
	// DefaultSessionLength is used when an exercise has no duration.
	DefaultSessionLength time.Duration
}

const (
	defaultDueWindow     = 30 * time.Minute
	defaultSessionLength = 5 * time.Minute
)

func (o Options) dueWindow() time.Duration {
	if o.DueWindow > 0 {
		return o.DueWindow
	}
	return defaultDueWindow
}

func (o Options) sessionSeconds() int {
	if o.DefaultSessionLength > 0 {
		return int(o.DefaultSessionLength / time.Second)
	}
	return int(defaultSessionLength / time.Second)
}

// Engine bundles a clock with the configured thresholds. It holds no
// other state; the same inputs at the same instant always produce the
// same outputs.
type Engine struct {
	clock Clock
	opts  Options
}

func New(clock Clock, opts Options) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{clock: clock, opts: opts}
}

// ScheduleToday expands the given medications for the current day and
// classifies every occurrence against the current instant. Medications
// must be passed in creation order; ties at the same reminder time keep
// that order.
func (e *Engine) ScheduleToday(meds []models.Medication) []Occurrence {
	now := e.clock.Now()
	return ScheduleDay(meds, now, now, e.opts)
}

// PartitionAppointments splits the list into upcoming (soonest first)
// and past (most recently past first) against the current instant.
func (e *Engine) PartitionAppointments(appts []models.Appointment) (upcoming, past []models.Appointment) {
	return PartitionAppointments(appts, e.clock.Now())
}

// DailyTotals sums the nutrient fields of a same-day meal set.
func (e *Engine) DailyTotals(meals []models.Meal) Totals {
	return DailyTotals(meals)
}

// NewSession returns an idle exercise session using the engine's
// configured default length.
func (e *Engine) NewSession() *Session {
	return NewSession(e.opts)
}

// CourseStatus classifies a medication course against the current day.
func (e *Engine) CourseStatus(med models.Medication) CourseStatus {
	return ClassifyCourse(med, e.clock.Now())
}
