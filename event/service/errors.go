package service

import "errors"

var (
	ErrInvalidTaskInput = errors.New("task requires a title")
	ErrInvalidPriority  = errors.New("invalid task priority")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrEmptyTaskUpdate  = errors.New("task update carries no fields")
	ErrTaskNotFound     = errors.New("task not found")
)
