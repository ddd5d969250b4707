package engine

import (
	"errors"
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func TestSession_SelectSetsReady(t *testing.T) {
	s := NewSession(Options{})
	s.Select(7, "box breathing", intp(5))

	if s.Phase() != PhaseReady {
		t.Errorf("phase = %q, want ready", s.Phase())
	}
	if s.Elapsed() != 0 {
		t.Errorf("elapsed = %d, want 0", s.Elapsed())
	}
	if s.MaxTime() != 300 {
		t.Errorf("max = %d, want 300", s.MaxTime())
	}
}

func TestSession_MissingDurationUsesDefault(t *testing.T) {
	s := NewSession(Options{})
	s.Select(1, "body scan", nil)
	if s.MaxTime() != 300 {
		t.Errorf("max = %d, want default 300", s.MaxTime())
	}

	s = NewSession(Options{DefaultSessionLength: 120 * time.Second})
	s.Select(1, "body scan", nil)
	if s.MaxTime() != 120 {
		t.Errorf("max = %d, want configured 120", s.MaxTime())
	}
}

func TestSession_DriveWithoutExercise(t *testing.T) {
	s := NewSession(Options{})

	if err := s.Toggle(); !errors.Is(err, ErrNoExercise) {
		t.Errorf("Toggle() on idle = %v, want ErrNoExercise", err)
	}
	if err := s.Reset(); !errors.Is(err, ErrNoExercise) {
		t.Errorf("Reset() on idle = %v, want ErrNoExercise", err)
	}
	if _, err := s.Tick(); !errors.Is(err, ErrNoExercise) {
		t.Errorf("Tick() on idle = %v, want ErrNoExercise", err)
	}
}

func TestSession_ToggleTransitions(t *testing.T) {
	s := NewSession(Options{})
	s.Select(1, "breathing", intp(5))

	steps := []struct {
		want SessionPhase
	}{
		{PhaseRunning}, // ready → running
		{PhasePaused},  // running → paused
		{PhaseRunning}, // paused → running
	}
	for i, st := range steps {
		if err := s.Toggle(); err != nil {
			t.Fatalf("Toggle %d failed: %v", i, err)
		}
		if s.Phase() != st.want {
			t.Fatalf("after toggle %d phase = %q, want %q", i, s.Phase(), st.want)
		}
	}
}

func TestSession_TickOnlyAdvancesWhileRunning(t *testing.T) {
	s := NewSession(Options{})
	s.Select(1, "breathing", intp(5))

	// Ready: ticks do nothing.
	if _, err := s.Tick(); err != nil {
		t.Fatalf("Tick on ready: %v", err)
	}
	if s.Elapsed() != 0 {
		t.Errorf("tick on ready advanced elapsed to %d", s.Elapsed())
	}

	s.Toggle() // running
	s.Tick()
	s.Toggle() // paused
	s.Tick()
	if s.Elapsed() != 1 {
		t.Errorf("elapsed = %d after one running tick and one paused tick, want 1", s.Elapsed())
	}
}

func TestSession_RunToCompletion(t *testing.T) {
	s := NewSession(Options{})
	s.Select(9, "deep relaxation", intp(5)) // 300 seconds
	if err := s.Toggle(); err != nil {
		t.Fatal(err)
	}

	fired := 0
	for i := 0; i < 310; i++ {
		done, err := s.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if done {
			fired++
			if i != 299 {
				t.Errorf("completion fired on tick %d, want 299", i)
			}
		}
	}

	if fired != 1 {
		t.Errorf("completion fired %d times, want exactly once", fired)
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %q, want completed", s.Phase())
	}
	if s.Elapsed() != 300 {
		t.Errorf("elapsed = %d, want clamped to 300", s.Elapsed())
	}
	if s.Progress() != 100 {
		t.Errorf("progress = %v, want 100", s.Progress())
	}
}

func TestSession_ResetAfterCompletion(t *testing.T) {
	s := NewSession(Options{})
	s.Select(1, "breathing", intp(1)) // 60 seconds
	s.Toggle()
	for i := 0; i < 60; i++ {
		s.Tick()
	}
	if s.Phase() != PhaseCompleted {
		t.Fatalf("phase = %q, want completed", s.Phase())
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset after completion: %v", err)
	}
	if s.Phase() != PhaseReady || s.Elapsed() != 0 {
		t.Errorf("after reset phase=%q elapsed=%d, want ready/0", s.Phase(), s.Elapsed())
	}

	// The session can run and complete again, firing once more.
	s.Toggle()
	fired := 0
	for i := 0; i < 60; i++ {
		if done, _ := s.Tick(); done {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("second run fired completion %d times, want 1", fired)
	}
}

func TestSession_SelectDiscardsProgress(t *testing.T) {
	s := NewSession(Options{})
	s.Select(1, "breathing", intp(5))
	s.Toggle()
	for i := 0; i < 30; i++ {
		s.Tick()
	}

	s.Select(2, "gratitude", intp(10))
	if s.Phase() != PhaseReady || s.Elapsed() != 0 || s.MaxTime() != 600 {
		t.Errorf("after re-select: phase=%q elapsed=%d max=%d, want ready/0/600",
			s.Phase(), s.Elapsed(), s.MaxTime())
	}
}

func TestSession_ProgressGuardsZeroLength(t *testing.T) {
	s := &Session{phase: PhaseReady} // maxTime 0, not reachable via Select
	if got := s.Progress(); got != 0 {
		t.Errorf("progress with zero max = %v, want 0", got)
	}
}

func TestSession_ProgressMidway(t *testing.T) {
	s := NewSession(Options{})
	s.Select(1, "breathing", intp(5))
	s.Toggle()
	for i := 0; i < 75; i++ {
		s.Tick()
	}
	if got := s.Progress(); got != 25 {
		t.Errorf("progress = %v, want 25", got)
	}
	snap := s.Snapshot()
	if snap.Remaining != "03:45" {
		t.Errorf("remaining = %q, want 03:45", snap.Remaining)
	}
}
