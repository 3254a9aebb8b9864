package app

import (
	"github.com/adanyl0v/go-task-tracker/internal/services"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

var (
	globalStore       *storage.Store
	globalTaskService services.TaskService
)

// InitStorage builds the in-memory task store and the repository
// service on top of it. Tasks live only as long as the process; there
// is deliberately no persistent backend behind the store.
func InitStorage() {
	globalStore = storage.New()
	globalTaskService = services.NewTaskService(globalLogger, globalStore)

	globalLogger.Info().Msg("initialized in-memory task storage")
}
