package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/faseops/membership/scheduled-tasks/event/dal"
	"github.com/faseops/membership/scheduled-tasks/event/dal/mocks"
	"github.com/faseops/membership/scheduled-tasks/event/domain"
	"github.com/faseops/membership/scheduled-tasks/logger"
	loggerMocks "github.com/faseops/membership/scheduled-tasks/logger/mocks"
	registrationMocks "github.com/faseops/membership/scheduled-tasks/registration/dal/mocks"
	registrationDomain "github.com/faseops/membership/scheduled-tasks/registration/domain"
)

func testLoggerProvider() logger.Provider {
	return func(_ context.Context) logger.ILogger {
		l := &loggerMocks.ILogger{}
		for _, method := range []string{"Info", "Infof", "Warning", "Warningf", "Error", "Errorf"} {
			l.On(method, mock.Anything).Maybe()
			l.On(method, mock.Anything, mock.Anything).Maybe()
			l.On(method, mock.Anything, mock.Anything, mock.Anything).Maybe()
			l.On(method, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
		}
		l.On("SetLabel", mock.Anything, mock.Anything).Maybe()
		l.On("SetLabels", mock.Anything).Maybe()

		return l
	}
}

func TestEventService_Stats(t *testing.T) {
	ctx := context.Background()

	now := time.Now().UTC()
	checkedInAt := &now

	registrations := []*registrationDomain.Registration{
		{
			RegistrationID: "R1",
			PaymentStatus:  registrationDomain.PaymentStatusConfirmed,
			Attendees:      make([]registrationDomain.Attendee, 3),
			Pricing:        registrationDomain.Pricing{TotalPrice: 1500},
			BillingInfo:    registrationDomain.BillingInfo{OrganizationType: "MGA"},
			CheckedInAt:    checkedInAt,
			CheckedInCount: 3,
		},
		{
			RegistrationID: "R2",
			PaymentStatus:  registrationDomain.PaymentStatusPaid,
			Attendees:      make([]registrationDomain.Attendee, 1),
			Pricing:        registrationDomain.Pricing{TotalPrice: 500},
			BillingInfo:    registrationDomain.BillingInfo{OrganizationType: "carrier"},
		},
		{
			RegistrationID: "R3",
			PaymentStatus:  registrationDomain.PaymentStatusPendingBankTransfer,
			Attendees:      make([]registrationDomain.Attendee, 2),
			Pricing:        registrationDomain.Pricing{TotalPrice: 1000},
			BillingInfo:    registrationDomain.BillingInfo{OrganizationType: "MGA"},
		},
	}

	t.Run("aggregates in one pass", func(t *testing.T) {
		registrationsDAL := registrationMocks.Registrations{}
		registrationsDAL.On("ListAll", ctx).Return(registrations, nil)

		s := NewEventServiceWithDALs(testLoggerProvider(), &mocks.Tasks{}, &registrationsDAL)

		stats, err := s.Stats(ctx, false)

		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalRegistrations)
		assert.Equal(t, 6, stats.AttendeeCount)
		assert.Equal(t, 3, stats.CheckedInCount)
		assert.Equal(t, 2000.0, stats.Revenue)
		assert.Equal(t, map[string]int{
			"confirmed":             1,
			"paid":                  1,
			"pending_bank_transfer": 1,
		}, stats.ByPaymentStatus)
		assert.Nil(t, stats.ByOrganizationType)
	})

	t.Run("detailed adds the organization breakdown", func(t *testing.T) {
		registrationsDAL := registrationMocks.Registrations{}
		registrationsDAL.On("ListAll", ctx).Return(registrations, nil)

		s := NewEventServiceWithDALs(testLoggerProvider(), &mocks.Tasks{}, &registrationsDAL)

		stats, err := s.Stats(ctx, true)

		assert.NoError(t, err)
		assert.Equal(t, map[string]int{"MGA": 2, "carrier": 1}, stats.ByOrganizationType)
	})

	t.Run("empty event", func(t *testing.T) {
		registrationsDAL := registrationMocks.Registrations{}
		registrationsDAL.On("ListAll", ctx).Return([]*registrationDomain.Registration{}, nil)

		s := NewEventServiceWithDALs(testLoggerProvider(), &mocks.Tasks{}, &registrationsDAL)

		stats, err := s.Stats(ctx, false)

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.TotalRegistrations)
		assert.Equal(t, 0.0, stats.Revenue)
		assert.Empty(t, stats.ByPaymentStatus)
	})
}

func TestEventService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults priority and status", func(t *testing.T) {
		tasksDAL := mocks.Tasks{}
		tasksDAL.On("CreateTask", ctx, mock.AnythingOfType("*domain.Task")).Return("task-1", nil)

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		task, err := s.CreateTask(ctx, &domain.Task{Title: "Print badges"})

		assert.NoError(t, err)
		assert.Equal(t, "task-1", task.ID)
		assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
		assert.Equal(t, domain.TaskStatusTodo, task.Status)
	})

	t.Run("keeps explicit priority and status", func(t *testing.T) {
		tasksDAL := mocks.Tasks{}
		tasksDAL.On("CreateTask", ctx, mock.AnythingOfType("*domain.Task")).Return("task-1", nil)

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		task, err := s.CreateTask(ctx, &domain.Task{
			Title:    "Book catering",
			Priority: domain.TaskPriorityHigh,
			Status:   domain.TaskStatusInProgress,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TaskPriorityHigh, task.Priority)
		assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		tasksDAL := mocks.Tasks{}

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		task, err := s.CreateTask(ctx, &domain.Task{})

		assert.ErrorIs(t, err, ErrInvalidTaskInput)
		assert.Nil(t, task)
		tasksDAL.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown priority", func(t *testing.T) {
		s := NewEventServiceWithDALs(testLoggerProvider(), &mocks.Tasks{}, &registrationMocks.Registrations{})

		_, err := s.CreateTask(ctx, &domain.Task{Title: "x", Priority: "urgent"})

		assert.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		s := NewEventServiceWithDALs(testLoggerProvider(), &mocks.Tasks{}, &registrationMocks.Registrations{})

		_, err := s.CreateTask(ctx, &domain.Task{Title: "x", Status: "blocked"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestEventService_UpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("applies a partial update and re-reads", func(t *testing.T) {
		status := domain.TaskStatusDone

		tasksDAL := mocks.Tasks{}
		tasksDAL.On("UpdateTask", ctx, "task-1", mock.AnythingOfType("*domain.TaskUpdate")).Return(nil)
		tasksDAL.On("GetTask", ctx, "task-1").
			Return(&domain.Task{ID: "task-1", Title: "Print badges", Status: domain.TaskStatusDone}, nil)

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		task, err := s.UpdateTask(ctx, "task-1", &domain.TaskUpdate{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusDone, task.Status)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		tasksDAL := mocks.Tasks{}

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		task, err := s.UpdateTask(ctx, "task-1", &domain.TaskUpdate{})

		assert.ErrorIs(t, err, ErrEmptyTaskUpdate)
		assert.Nil(t, task)
		tasksDAL.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		status := domain.TaskStatus("blocked")

		s := NewEventServiceWithDALs(testLoggerProvider(), &mocks.Tasks{}, &registrationMocks.Registrations{})

		_, err := s.UpdateTask(ctx, "task-1", &domain.TaskUpdate{Status: &status})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown task", func(t *testing.T) {
		status := domain.TaskStatusDone

		tasksDAL := mocks.Tasks{}
		tasksDAL.On("UpdateTask", ctx, "nope", mock.AnythingOfType("*domain.TaskUpdate")).
			Return(dal.ErrTaskNotFound)

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		_, err := s.UpdateTask(ctx, "nope", &domain.TaskUpdate{Status: &status})

		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestEventService_DeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		tasksDAL := mocks.Tasks{}
		tasksDAL.On("DeleteTask", ctx, "task-1").Return(nil)

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		assert.NoError(t, s.DeleteTask(ctx, "task-1"))
	})

	t.Run("unknown task", func(t *testing.T) {
		tasksDAL := mocks.Tasks{}
		tasksDAL.On("DeleteTask", ctx, "nope").Return(dal.ErrTaskNotFound)

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		assert.ErrorIs(t, s.DeleteTask(ctx, "nope"), ErrTaskNotFound)
	})

	t.Run("dal failure is propagated", func(t *testing.T) {
		tasksDAL := mocks.Tasks{}
		tasksDAL.On("DeleteTask", ctx, "task-1").Return(errors.New("deadline exceeded"))

		s := NewEventServiceWithDALs(testLoggerProvider(), &tasksDAL, &registrationMocks.Registrations{})

		assert.Error(t, s.DeleteTask(ctx, "task-1"))
	})
}
