package service

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/event/dal"
	"github.com/faseops/membership/scheduled-tasks/event/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/logger"
	registrationDal "github.com/faseops/membership/scheduled-tasks/registration/dal"
)

type EventService struct {
	loggerProvider logger.Provider
	*connection.Connection
	tasksDAL         dal.Tasks
	registrationsDAL registrationDal.Registrations
}

func NewEventService(loggerProvider logger.Provider, conn *connection.Connection) *EventService {
	return &EventService{
		loggerProvider,
		conn,
		dal.NewTasksFirestoreWithClient(conn.Firestore),
		registrationDal.NewRegistrationsFirestoreWithClient(conn.Firestore),
	}
}

// NewEventServiceWithDALs wires explicit DALs, used by tests.
func NewEventServiceWithDALs(loggerProvider logger.Provider, tasksDAL dal.Tasks, registrationsDAL registrationDal.Registrations) *EventService {
	return &EventService{
		loggerProvider,
		nil,
		tasksDAL,
		registrationsDAL,
	}
}

// Stats aggregates the registration figures in a single pass. Revenue counts
// only registrations that actually paid.
func (s *EventService) Stats(ctx context.Context, detailed bool) (*domain.Stats, error) {
	registrations, err := s.registrationsDAL.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		ByPaymentStatus: make(map[string]int),
	}

	if detailed {
		stats.ByOrganizationType = make(map[string]int)
	}

	for _, registration := range registrations {
		stats.TotalRegistrations++
		stats.AttendeeCount += len(registration.Attendees)
		stats.ByPaymentStatus[string(registration.PaymentStatus)]++

		if registration.CheckedInAt != nil {
			stats.CheckedInCount += registration.CheckedInCount
		}

		if registration.PaymentStatus.Eligible() {
			stats.Revenue += registration.Pricing.TotalPrice
		}

		if detailed {
			stats.ByOrganizationType[registration.BillingInfo.OrganizationType]++
		}
	}

	return stats, nil
}

// CreateTask stores a new task, defaulting priority to medium and status to
// todo when omitted.
func (s *EventService) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.Title == "" {
		return nil, ErrInvalidTaskInput
	}

	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}

	if !task.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}

	if !task.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	taskID, err := s.tasksDAL.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	task.ID = taskID

	return task, nil
}

func (s *EventService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.tasksDAL.GetTask(ctx, taskID)
	if err != nil {
		if err == dal.ErrTaskNotFound {
			return nil, ErrTaskNotFound
		}

		return nil, err
	}

	return task, nil
}

func (s *EventService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.tasksDAL.ListTasks(ctx)
}

// UpdateTask applies a partial update. Only populated fields change.
func (s *EventService) UpdateTask(ctx context.Context, taskID string, update *domain.TaskUpdate) (*domain.Task, error) {
	if update.Empty() {
		return nil, ErrEmptyTaskUpdate
	}

	if update.Priority != nil && !update.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if update.Status != nil && !update.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if err := s.tasksDAL.UpdateTask(ctx, taskID, update); err != nil {
		if err == dal.ErrTaskNotFound {
			return nil, ErrTaskNotFound
		}

		return nil, err
	}

	return s.GetTask(ctx, taskID)
}

func (s *EventService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.tasksDAL.DeleteTask(ctx, taskID); err != nil {
		if err == dal.ErrTaskNotFound {
			return ErrTaskNotFound
		}

		return err
	}

	return nil
}
