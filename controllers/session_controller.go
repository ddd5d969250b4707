package controllers

import (
	"net/http"

	"backend/engine"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type SessionController struct {
	Engine *engine.Engine
}

func NewSessionController(eng *engine.Engine) *SessionController {
	return &SessionController{Engine: eng}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

// SessionWS drives one guided-exercise session over a websocket. The
// client sends {"action":"select","exercise_id":N}, then "toggle" /
// "reset"; the server pushes one state frame per second while running
// and a single session.completed frame at the end.
func (sc *SessionController) SessionWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	runner := services.NewSessionRunner(sc.Engine, conn)
	go runner.Run()

	// read loop ends on client close/error → stop the runner
	defer func() {
		runner.Close()
		_ = conn.Close()
	}()
	for {
		var cmd services.SessionCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		runner.Enqueue(cmd)
	}
}
