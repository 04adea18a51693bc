package domain

import "github.com/google/uuid"

// Identifiers are random v4 UUIDs: unique across the lifetime of the
// hub with overwhelming probability, no clock dependency.

func NewListID() ListID {
	return ListID(uuid.NewString())
}

func NewCheckpointID() CheckpointID {
	return CheckpointID(uuid.NewString())
}

func NewSubtaskID() SubtaskID {
	return SubtaskID(uuid.NewString())
}
