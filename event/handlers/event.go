package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faseops/membership/scheduled-tasks/event/domain"
	"github.com/faseops/membership/scheduled-tasks/event/service"
	"github.com/faseops/membership/scheduled-tasks/event/service/iface"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
	registrationService "github.com/faseops/membership/scheduled-tasks/registration/service"
	registrationIface "github.com/faseops/membership/scheduled-tasks/registration/service/iface"
)

type Event struct {
	loggerProvider logger.Provider
	service        iface.EventService
	registrations  registrationIface.RegistrationService
}

// NewEvent creates new event package handlers
func NewEvent(loggerProvider logger.Provider, conn *connection.Connection) *Event {
	return &Event{
		loggerProvider,
		service.NewEventService(loggerProvider, conn),
		registrationService.NewRegistrationService(loggerProvider, conn),
	}
}

type checkInRequest struct {
	RegistrationID string `json:"registrationId" binding:"required"`
}

// CheckInHandler checks a registration in. Repeated calls return the same
// attendee payload.
func (h *Event) CheckInHandler(ctx *gin.Context) error {
	var req checkInRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	result, err := h.registrations.CheckIn(ctx, req.RegistrationID)
	if err != nil {
		return translateCheckInError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"result":  result,
	}, http.StatusOK)
}

// StatsHandler returns the aggregate registration figures.
func (h *Event) StatsHandler(ctx *gin.Context) error {
	detailed := false

	if rawDetailed := ctx.Query("detailed"); rawDetailed != "" {
		parsed, err := strconv.ParseBool(rawDetailed)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		detailed = parsed
	}

	stats, err := h.service.Stats(ctx, detailed)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"stats":   stats,
	}, http.StatusOK)
}

type createTaskRequest struct {
	Title    string              `json:"title" binding:"required"`
	Assignee string              `json:"assignee"`
	Priority domain.TaskPriority `json:"priority"`
	Status   domain.TaskStatus   `json:"status"`
	DueDate  *time.Time          `json:"dueDate"`
}

// CreateTaskHandler stores a new event task.
func (h *Event) CreateTaskHandler(ctx *gin.Context) error {
	var req createTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	task := &domain.Task{
		Title:    req.Title,
		Assignee: req.Assignee,
		Priority: req.Priority,
		Status:   req.Status,
	}

	task.DueDate = req.DueDate

	created, err := h.service.CreateTask(ctx, task)
	if err != nil {
		return translateTaskError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"task":    created,
	}, http.StatusCreated)
}

// GetTaskHandler returns one task by id.
func (h *Event) GetTaskHandler(ctx *gin.Context) error {
	task, err := h.service.GetTask(ctx, ctx.Param("taskID"))
	if err != nil {
		return translateTaskError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"task":    task,
	}, http.StatusOK)
}

// ListTasksHandler returns every task.
func (h *Event) ListTasksHandler(ctx *gin.Context) error {
	tasks, err := h.service.ListTasks(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"tasks":   tasks,
	}, http.StatusOK)
}

// UpdateTaskHandler applies a partial update to a task.
func (h *Event) UpdateTaskHandler(ctx *gin.Context) error {
	var update domain.TaskUpdate

	if err := ctx.ShouldBindJSON(&update); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	task, err := h.service.UpdateTask(ctx, ctx.Param("taskID"), &update)
	if err != nil {
		return translateTaskError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"task":    task,
	}, http.StatusOK)
}

// DeleteTaskHandler removes a task.
func (h *Event) DeleteTaskHandler(ctx *gin.Context) error {
	if err := h.service.DeleteTask(ctx, ctx.Param("taskID")); err != nil {
		return translateTaskError(err)
	}

	return web.Respond(ctx, gin.H{"success": true}, http.StatusOK)
}

func translateCheckInError(err error) error {
	switch {
	case errors.Is(err, registrationService.ErrRegistrationNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, registrationService.ErrNotEligibleForCheckIn):
		return web.NewRequestError(err, http.StatusPreconditionFailed)
	}

	return web.NewRequestError(err, http.StatusInternalServerError)
}

func translateTaskError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidTaskInput),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrEmptyTaskUpdate):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, service.ErrTaskNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	}

	return web.NewRequestError(err, http.StatusInternalServerError)
}
