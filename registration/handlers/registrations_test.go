package handlers

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	testTools "github.com/faseops/membership/scheduled-tasks/common/test_tools"
	"github.com/faseops/membership/scheduled-tasks/logger"
	"github.com/faseops/membership/scheduled-tasks/registration/domain"
	"github.com/faseops/membership/scheduled-tasks/registration/service"
	"github.com/faseops/membership/scheduled-tasks/registration/service/iface/mocks"
)

func TestRegistrations_UpdateStatusHandler(t *testing.T) {
	type fields struct {
		service *mocks.RegistrationService
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
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"registrationId": "R1"}, nil),
			},
			wantErr: true,
		},
		{
			name: "service error",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"registrationId": "R1",
					"status":         "paid",
				}, nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("UpdateStatus", mock.AnythingOfType("*gin.Context"), service.UpdateStatusInput{
					RegistrationID: "R1",
					Status:         "paid",
				}).Return(nil, service.ErrIllegalTransition)
			},
		},
		{
			name: "success update status",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"registrationId": "R1",
					"status":         "paid",
				}, nil),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("UpdateStatus", mock.AnythingOfType("*gin.Context"), service.UpdateStatusInput{
					RegistrationID: "R1",
					Status:         "paid",
				}).Return(&domain.Registration{RegistrationID: "R1"}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				service: mocks.NewRegistrationService(t),
			}

			h := &Registrations{
				loggerProvider: logger.FromContext,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			if err := h.UpdateStatusHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Registrations.UpdateStatusHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistrations_DeleteHandler(t *testing.T) {
	type fields struct {
		service *mocks.RegistrationService
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
			name: "delete not confirmed",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"registrationId":     "R1",
					"confirmationPhrase": "delete",
				}, nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("Delete", mock.AnythingOfType("*gin.Context"), service.DeleteInput{
					RegistrationID:     "R1",
					ConfirmationPhrase: "delete",
				}).Return(service.ErrDeleteNotConfirmed)
			},
		},
		{
			name: "service error",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"registrationId":     "R1",
					"confirmationPhrase": "DELETE",
				}, nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("Delete", mock.AnythingOfType("*gin.Context"), service.DeleteInput{
					RegistrationID:     "R1",
					ConfirmationPhrase: "DELETE",
				}).Return(errors.New("error"))
			},
		},
		{
			name: "success delete",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
					"registrationId":     "R1",
					"confirmationPhrase": "DELETE",
					"invoiceNumber":      "FASE-00042",
				}, nil),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("Delete", mock.AnythingOfType("*gin.Context"), service.DeleteInput{
					RegistrationID:     "R1",
					ConfirmationPhrase: "DELETE",
					InvoiceNumber:      "FASE-00042",
				}).Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields = fields{
				service: mocks.NewRegistrationService(t),
			}

			h := &Registrations{
				loggerProvider: logger.FromContext,
				service:        tt.fields.service,
			}

			if tt.on != nil {
				tt.on(&tt.fields)
			}

			if err := h.DeleteHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Registrations.DeleteHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
