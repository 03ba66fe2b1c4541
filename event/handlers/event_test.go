package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	testTools "github.com/faseops/membership/scheduled-tasks/common/test_tools"
	"github.com/faseops/membership/scheduled-tasks/event/domain"
	"github.com/faseops/membership/scheduled-tasks/event/service"
	"github.com/faseops/membership/scheduled-tasks/event/service/iface/mocks"
	"github.com/faseops/membership/scheduled-tasks/logger"
	registrationDomain "github.com/faseops/membership/scheduled-tasks/registration/domain"
	registrationService "github.com/faseops/membership/scheduled-tasks/registration/service"
	registrationMocks "github.com/faseops/membership/scheduled-tasks/registration/service/iface/mocks"
)

func TestEvent_CheckInHandler(t *testing.T) {
	type fields struct {
		service       *mocks.EventService
		registrations *registrationMocks.RegistrationService
	}

	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "bind json error",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, nil),
			},
			wantErr: true,
		},
		{
			name: "not eligible for check-in",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"registrationId": "R1"}, nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.registrations.On("CheckIn", mock.AnythingOfType("*gin.Context"), "R1").
					Return(nil, registrationService.ErrNotEligibleForCheckIn)
			},
		},
		{
			name: "success check-in",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"registrationId": "R1"}, nil),
			},
			wantErr: false,
			on: func(f *fields) {
				f.registrations.On("CheckIn", mock.AnythingOfType("*gin.Context"), "R1").
					Return(&registrationDomain.CheckInResult{RegistrationID: "R1", AttendeeCount: 2}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				service:       mocks.NewEventService(t),
				registrations: registrationMocks.NewRegistrationService(t),
			}

			h := &Event{
				loggerProvider: logger.FromContext,
				service:        tt.fields.service,
				registrations:  tt.fields.registrations,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			if err := h.CheckInHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Event.CheckInHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEvent_StatsHandler(t *testing.T) {
	type fields struct {
		service       *mocks.EventService
		registrations *registrationMocks.RegistrationService
	}

	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "invalid detailed flag",
			args: args{
				ctx: testTools.GenerateCtxWithQuery(t, "detailed=maybe"),
			},
			wantErr: true,
		},
		{
			name: "success stats",
			args: args{
				ctx: testTools.GenerateCtxWithQuery(t, ""),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("Stats", mock.AnythingOfType("*gin.Context"), false).
					Return(&domain.Stats{TotalRegistrations: 3}, nil)
			},
		},
		{
			name: "success detailed stats",
			args: args{
				ctx: testTools.GenerateCtxWithQuery(t, "detailed=true"),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("Stats", mock.AnythingOfType("*gin.Context"), true).
					Return(&domain.Stats{TotalRegistrations: 3}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				service:       mocks.NewEventService(t),
				registrations: registrationMocks.NewRegistrationService(t),
			}

			h := &Event{
				loggerProvider: logger.FromContext,
				service:        tt.fields.service,
				registrations:  tt.fields.registrations,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			if err := h.StatsHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Event.StatsHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEvent_CreateTaskHandler(t *testing.T) {
	type fields struct {
		service       *mocks.EventService
		registrations *registrationMocks.RegistrationService
	}

	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "bind json error",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"assignee": "nora"}, nil),
			},
			wantErr: true,
		},
		{
			name: "invalid priority",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"title":    "Print badges",
					"priority": "urgent",
				}, nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("CreateTask", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("*domain.Task")).
					Return(nil, service.ErrInvalidPriority)
			},
		},
		{
			name: "success create task",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"title":    "Print badges",
					"priority": "high",
				}, nil),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("CreateTask", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("*domain.Task")).
					Return(&domain.Task{ID: "task-1", Title: "Print badges"}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				service:       mocks.NewEventService(t),
				registrations: registrationMocks.NewRegistrationService(t),
			}

			h := &Event{
				loggerProvider: logger.FromContext,
				service:        tt.fields.service,
				registrations:  tt.fields.registrations,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			if err := h.CreateTaskHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Event.CreateTaskHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEvent_TaskHandlers(t *testing.T) {
	taskParams := []gin.Param{{Key: "taskID", Value: "task-1"}}

	t.Run("get task not found", func(t *testing.T) {
		eventService := mocks.NewEventService(t)
		eventService.On("GetTask", mock.AnythingOfType("*gin.Context"), "task-1").
			Return(nil, service.ErrTaskNotFound)

		h := &Event{
			loggerProvider: logger.FromContext,
			service:        eventService,
			registrations:  registrationMocks.NewRegistrationService(t),
		}

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, taskParams)

		if err := h.GetTaskHandler(ctx); err == nil {
			t.Error("Event.GetTaskHandler() expected error, got nil")
		}
	})

	t.Run("delete task", func(t *testing.T) {
		eventService := mocks.NewEventService(t)
		eventService.On("DeleteTask", mock.AnythingOfType("*gin.Context"), "task-1").Return(nil)

		h := &Event{
			loggerProvider: logger.FromContext,
			service:        eventService,
			registrations:  registrationMocks.NewRegistrationService(t),
		}

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, taskParams)

		if err := h.DeleteTaskHandler(ctx); err != nil {
			t.Errorf("Event.DeleteTaskHandler() error = %v", err)
		}
	})
}
