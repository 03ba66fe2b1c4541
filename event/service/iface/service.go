package iface

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/event/domain"
)

//go:generate mockery --name EventService --output ./mocks
type EventService interface {
	Stats(ctx context.Context, detailed bool) (*domain.Stats, error)
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, update *domain.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}
