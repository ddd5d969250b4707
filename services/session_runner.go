package services

import (
	"errors"
	"sync"
	"time"

	"backend/engine"

	"github.com/gorilla/websocket"
)

var errUnknownAction = errors.New("unknown session action")

// SessionCommand is what the client sends over the exercise-session
// socket.
type SessionCommand struct {
	Action     string `json:"action"` // select | toggle | reset
	ExerciseID uint   `json:"exercise_id,omitempty"`
}

// SessionRunner drives one exercise session for one websocket
// connection. A single goroutine (Run) owns the engine.Session; the
// read loop hands commands in through a channel, so Toggle and Tick are
// never applied concurrently. Stopping the ticker before leaving the
// running phase guarantees no tick mutates state after a pause, reset
// or disconnect.
type SessionRunner struct {
	eng  *engine.Engine
	conn *websocket.Conn
	cmds chan SessionCommand
	done chan struct{}
	once sync.Once
}

func NewSessionRunner(eng *engine.Engine, conn *websocket.Conn) *SessionRunner {
	return &SessionRunner{
		eng:  eng,
		conn: conn,
		cmds: make(chan SessionCommand, 8),
		done: make(chan struct{}),
	}
}

// Enqueue hands a client command to the runner goroutine.
func (r *SessionRunner) Enqueue(cmd SessionCommand) {
	select {
	case r.cmds <- cmd:
	case <-r.done:
	}
}

// Close stops the runner; pending ticks are discarded.
func (r *SessionRunner) Close() {
	r.once.Do(func() { close(r.done) })
}

func (r *SessionRunner) Run() {
	sess := r.eng.NewSession()

	var ticker *time.Ticker
	var tick <-chan time.Time
	startTicking := func() {
		if ticker == nil {
			ticker = time.NewTicker(time.Second)
			tick = ticker.C
		}
	}
	stopTicking := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
	}
	defer stopTicking()

	// keepalive through proxies; all writes stay on this goroutine
	ping := time.NewTicker(25 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-r.done:
			return

		case cmd := <-r.cmds:
			if err := r.apply(sess, cmd); err != nil {
				r.sendJSON(map[string]any{"kind": "session.error", "error": err.Error()})
				continue
			}
			if sess.Phase() == engine.PhaseRunning {
				startTicking()
			} else {
				stopTicking()
			}
			r.sendJSON(map[string]any{"kind": "session.state", "session": sess.Snapshot()})

		case <-tick:
			completed, err := sess.Tick()
			if err != nil {
				continue
			}
			r.sendJSON(map[string]any{"kind": "session.state", "session": sess.Snapshot()})
			if completed {
				r.sendJSON(map[string]any{"kind": "session.completed", "session": sess.Snapshot()})
			}
			if sess.Phase() != engine.PhaseRunning {
				stopTicking()
			}

		case <-ping.C:
			if err := r.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				r.Close()
				return
			}
		}
	}
}

func (r *SessionRunner) apply(sess *engine.Session, cmd SessionCommand) error {
	switch cmd.Action {
	case "select":
		ex, err := GetExercise(cmd.ExerciseID)
		if err != nil {
			return err
		}
		sess.Select(ex.ID, ex.Title, ex.DurationMinutes)
		return nil
	case "toggle":
		return sess.Toggle()
	case "reset":
		return sess.Reset()
	default:
		return errUnknownAction
	}
}

func (r *SessionRunner) sendJSON(v any) {
	_ = r.conn.WriteJSON(v)
}
