package app

import (
	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

var globalSweeper *services.Sweeper

func StartSweeper() {
	cfg := config.Global().Sweeper

	globalSweeper = services.NewSweeper(
		globalLogger,
		globalTaskService,
		cfg.Interval,
		cfg.Retention,
	)
	globalSweeper.Start()
}

func StopSweeper() {
	globalSweeper.Stop()
}
