package engine

import (
	"errors"
	"fmt"
)

// ErrNoExercise is returned when a session is driven before an exercise
// has been selected. That is a caller bug, not bad data, so it is
// surfaced instead of ignored.
var ErrNoExercise = errors.New("engine: no exercise selected")

// SessionPhase is the state of an exercise session.
type SessionPhase string

const (
	PhaseIdle      SessionPhase = "idle"
	PhaseReady     SessionPhase = "ready"
	PhaseRunning   SessionPhase = "running"
	PhasePaused    SessionPhase = "paused"
	PhaseCompleted SessionPhase = "completed"
)

// Session is the pausable countdown for one guided exercise. It is the
// only stateful piece of this package and must be owned by a single
// goroutine at a time; concurrent Toggle/Tick calls on the same value
// must be serialized by the caller.
type Session struct {
	phase          SessionPhase
	exerciseID     uint
	title          string
	elapsed        int // seconds
	maxTime        int // seconds
	defaultSeconds int
	completedFired bool
}

// NewSession returns an idle session. opts supplies the fallback length
// for exercises without a duration.
func NewSession(opts Options) *Session {
	return &Session{phase: PhaseIdle, defaultSeconds: opts.sessionSeconds()}
}

// Select picks an exercise and re-enters ready, discarding any prior
// progress. A missing or non-positive duration falls back to the
// configured default.
func (s *Session) Select(exerciseID uint, title string, durationMinutes *int) {
	s.exerciseID = exerciseID
	s.title = title
	if durationMinutes != nil && *durationMinutes > 0 {
		s.maxTime = *durationMinutes * 60
	} else {
		s.maxTime = s.defaultSeconds
	}
	s.elapsed = 0
	s.completedFired = false
	s.phase = PhaseReady
}

// Toggle flips between running and paused. From ready it starts the
// session; from completed it is a no-op (Reset re-arms the session).
func (s *Session) Toggle() error {
	switch s.phase {
	case PhaseIdle:
		return ErrNoExercise
	case PhaseReady, PhasePaused:
		s.phase = PhaseRunning
	case PhaseRunning:
		s.phase = PhasePaused
	case PhaseCompleted:
		// stay completed
	}
	return nil
}

// Reset returns a selected session to ready with zero elapsed time.
func (s *Session) Reset() error {
	if s.phase == PhaseIdle {
		return ErrNoExercise
	}
	s.elapsed = 0
	s.completedFired = false
	s.phase = PhaseReady
	return nil
}

// Tick advances the session by one second while running, clamped to the
// exercise length. It reports completed=true exactly once, on the tick
// that reaches the end; later ticks are no-ops.
func (s *Session) Tick() (completed bool, err error) {
	if s.phase == PhaseIdle {
		return false, ErrNoExercise
	}
	if s.phase != PhaseRunning {
		return false, nil
	}
	if s.elapsed < s.maxTime {
		s.elapsed++
	}
	if s.elapsed >= s.maxTime {
		s.phase = PhaseCompleted
		if !s.completedFired {
			s.completedFired = true
			return true, nil
		}
	}
	return false, nil
}

// Progress reports percent complete in [0,100]. A zero-length session
// reports 0 rather than dividing by zero.
func (s *Session) Progress() float64 {
	if s.maxTime <= 0 {
		return 0
	}
	p := float64(s.elapsed) / float64(s.maxTime) * 100
	if p > 100 {
		return 100
	}
	return p
}

func (s *Session) Phase() SessionPhase { return s.phase }
func (s *Session) Elapsed() int        { return s.elapsed }
func (s *Session) MaxTime() int        { return s.maxTime }

// SessionState is the wire snapshot pushed to clients.
type SessionState struct {
	Phase      SessionPhase `json:"phase"`
	ExerciseID uint         `json:"exercise_id,omitempty"`
	Title      string       `json:"title,omitempty"`
	Elapsed    int          `json:"elapsed_seconds"`
	MaxTime    int          `json:"max_seconds"`
	Progress   float64      `json:"progress_pct"`
	Remaining  string       `json:"remaining"`
}

func (s *Session) Snapshot() SessionState {
	return SessionState{
		Phase:      s.phase,
		ExerciseID: s.exerciseID,
		Title:      s.title,
		Elapsed:    s.elapsed,
		MaxTime:    s.maxTime,
		Progress:   s.Progress(),
		Remaining:  formatClock(s.maxTime - s.elapsed),
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
