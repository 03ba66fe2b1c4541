package dal

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/event/domain"
)

//go:generate mockery --name Tasks --output ./mocks
type Tasks interface {
	CreateTask(ctx context.Context, task *domain.Task) (string, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, update *domain.TaskUpdate) error
	DeleteTask(ctx context.Context, taskID string) error
}
