package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/faseops/membership/scheduled-tasks/event/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
)

const (
	tasksCollection = "eventTasks"

	fieldTitle     = "title"
	fieldAssignee  = "assignee"
	fieldPriority  = "priority"
	fieldStatus    = "status"
	fieldDueDate   = "dueDate"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// TasksFirestore is used to interact with event tasks stored on Firestore.
type TasksFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewTasksFirestoreWithClient returns a new TasksFirestore using given client.
func NewTasksFirestoreWithClient(fun connection.FirestoreFromContextFun) *TasksFirestore {
	return &TasksFirestore{
		firestoreClientFun: fun,
	}
}

func (d *TasksFirestore) tasksRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(tasksCollection)
}

// CreateTask stores a new task under a generated id and returns the id.
func (d *TasksFirestore) CreateTask(ctx context.Context, task *domain.Task) (string, error) {
	taskID := uuid.New().String()

	if _, err := d.tasksRef(ctx).Doc(taskID).Create(ctx, task); err != nil {
		return "", err
	}

	return taskID, nil
}

func (d *TasksFirestore) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	docSnap, err := d.tasksRef(ctx).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrTaskNotFound
		}

		return nil, err
	}

	return toTask(docSnap)
}

// ListTasks returns every task ordered by creation time.
func (d *TasksFirestore) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	docSnaps, err := d.tasksRef(ctx).
		OrderBy(fieldCreatedAt, firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		task, err := toTask(docSnap)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// UpdateTask applies only the fields present on the update, leaving the rest
// of the stored task untouched.
func (d *TasksFirestore) UpdateTask(ctx context.Context, taskID string, update *domain.TaskUpdate) error {
	updates := []firestore.Update{
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	}

	if update.Title != nil {
		updates = append(updates, firestore.Update{Path: fieldTitle, Value: *update.Title})
	}

	if update.Assignee != nil {
		updates = append(updates, firestore.Update{Path: fieldAssignee, Value: *update.Assignee})
	}

	if update.Priority != nil {
		updates = append(updates, firestore.Update{Path: fieldPriority, Value: string(*update.Priority)})
	}

	if update.Status != nil {
		updates = append(updates, firestore.Update{Path: fieldStatus, Value: string(*update.Status)})
	}

	if update.DueDate != nil {
		updates = append(updates, firestore.Update{Path: fieldDueDate, Value: *update.DueDate})
	}

	_, err := d.tasksRef(ctx).Doc(taskID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrTaskNotFound
		}

		return err
	}

	return nil
}

func (d *TasksFirestore) DeleteTask(ctx context.Context, taskID string) error {
	docRef := d.tasksRef(ctx).Doc(taskID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrTaskNotFound
		}

		return err
	}

	_, err := docRef.Delete(ctx)

	return err
}

func toTask(docSnap *firestore.DocumentSnapshot) (*domain.Task, error) {
	var task domain.Task

	if err := docSnap.DataTo(&task); err != nil {
		return nil, err
	}

	task.ID = docSnap.Ref.ID

	return &task, nil
}
