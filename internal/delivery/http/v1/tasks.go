package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	logger := h.requestLogger(c)

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	params := services.CreateTaskParams{Title: req.Title}
	if req.Description != nil {
		params.Description = *req.Description
	}

	task, err := h.tasks.CreateTask(c, params)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to create task")
		abortWithServiceError(c, err)
		return
	}

	logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	logger := h.requestLogger(c)

	taskID := c.Param("id")
	if taskID == "" {
		logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("no task id provided"))
		return
	}

	task, err := h.tasks.GetTaskByID(c, taskID)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to fetch task")
		abortWithServiceError(c, err)
		return
	}

	logger.Info().
		Str("task_id", taskID).
		Msg("fetched task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	logger := h.requestLogger(c)

	var filter *models.Status
	if token := c.Query("status"); token != "" {
		status, ok := models.ParseStatus(token)
		if !ok {
			logger.Error().
				Str("status", token).
				Msg("invalid status")
			abort(c, newBadRequestError("invalid status"))
			return
		}
		filter = &status
	}

	tasks, err := h.tasks.ListTasks(c, filter)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abortWithServiceError(c, err)
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	logger.Info().
		Int("count", len(response)).
		Msg("listed tasks")
	c.JSON(http.StatusOK, response)
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	logger := h.requestLogger(c)

	taskID := c.Param("id")
	if taskID == "" {
		logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("no task id provided"))
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	params := services.UpdateTaskParams{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status, ok := models.ParseStatus(*req.Status)
		if !ok {
			logger.Error().
				Str("status", *req.Status).
				Msg("invalid status")
			abort(c, newBadRequestError("invalid status"))
			return
		}
		params.Status = &status
	}

	task, err := h.tasks.UpdateTask(c, params)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to update task")
		abortWithServiceError(c, err)
		return
	}

	logger.Info().
		Str("task_id", taskID).
		Msg("updated task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	logger := h.requestLogger(c)

	taskID := c.Param("id")
	if taskID == "" {
		logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("no task id provided"))
		return
	}

	err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		abortWithServiceError(c, err)
		return
	}

	logger.Info().
		Str("task_id", taskID).
		Msg("deleted task")
	c.Status(http.StatusNoContent)
}

type deleteCompletedResponse struct {
	Count int `json:"count"`
}

func (h *handlerImpl) HandleDeleteCompletedTasks(c *gin.Context) {
	logger := h.requestLogger(c)

	before := c.Query("before")
	if before == "" {
		logger.Error().Msg("no threshold provided")
		abort(c, newBadRequestError("no threshold provided"))
		return
	}

	threshold, err := time.Parse(time.RFC3339, before)
	if err != nil {
		logger.Error().
			Err(err).
			Str("before", before).
			Msg("invalid threshold")
		abort(c, newBadRequestError("invalid threshold"))
		return
	}

	count, err := h.tasks.DeleteCompletedBefore(c, threshold)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to delete completed tasks")
		abortWithServiceError(c, err)
		return
	}

	logger.Info().
		Int("count", count).
		Msg("deleted completed tasks")
	c.JSON(http.StatusOK, deleteCompletedResponse{Count: count})
}
