package domain

import "errors"

var (
	ErrListNotFound       = errors.New("list not found")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrSubtaskNotFound    = errors.New("subtask not found")
)
