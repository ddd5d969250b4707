package main

import (
	"os"
	"strconv"
	"time"

	"backend/config"
	"backend/engine"
	"backend/routes"
	"backend/utils"
)

// engineOptions reads the tunable thresholds from the environment,
// falling back to the engine defaults.
func engineOptions() engine.Options {
	var opts engine.Options
	if v, err := strconv.Atoi(os.Getenv("DUE_WINDOW_MINUTES")); err == nil && v > 0 {
		opts.DueWindow = time.Duration(v) * time.Minute
	}
	if v, err := strconv.Atoi(os.Getenv("DEFAULT_SESSION_SECONDS")); err == nil && v > 0 {
		opts.DefaultSessionLength = time.Duration(v) * time.Second
	}
	return opts
}

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitRekognition()
	utils.InitMailer()

	eng := engine.New(engine.RealClock{}, engineOptions())

	r := routes.SetupRouter(eng)
	r.Run(":8080")
}
