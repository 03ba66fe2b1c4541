package domain

import "time"

// TaskPriority of an event preparation task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}

	return false
}

// TaskStatus of an event preparation task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}

	return false
}

// Task is an event preparation task.
type Task struct {
	ID        string       `firestore:"-" json:"id"`
	Title     string       `firestore:"title" json:"title"`
	Assignee  string       `firestore:"assignee" json:"assignee"`
	Priority  TaskPriority `firestore:"priority" json:"priority"`
	Status    TaskStatus   `firestore:"status" json:"status"`
	DueDate   *time.Time   `firestore:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt time.Time    `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt time.Time    `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// TaskUpdate carries the fields of a partial task update. Nil fields are left
// untouched on the stored task.
type TaskUpdate struct {
	Title    *string       `json:"title,omitempty"`
	Assignee *string       `json:"assignee,omitempty"`
	Priority *TaskPriority `json:"priority,omitempty"`
	Status   *TaskStatus   `json:"status,omitempty"`
	DueDate  *time.Time    `json:"dueDate,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u *TaskUpdate) Empty() bool {
	return u.Title == nil && u.Assignee == nil && u.Priority == nil && u.Status == nil && u.DueDate == nil
}
