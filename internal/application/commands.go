package application

import (
	"context"
	"fmt"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

// Commands addressed at an explicit list or checkpoint id return
// domain.Err*NotFound when the target is gone. Commands that operate
// on the active list silently no-op when nothing is active, matching
// the web app's behavior.

func (s *Session) AddList(ctx context.Context, name string) (*domain.List, error) {
	list := domain.NewList(name, s.clock.Now())
	s.hub.Lists = append(s.hub.Lists, list)
	s.hub.ActiveListID = list.ID

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	return list, nil
}

func (s *Session) RenameList(ctx context.Context, id domain.ListID, name string) error {
	list := s.hub.FindList(id)
	if list == nil {
		return domain.ErrListNotFound
	}

	list.Name = name
	s.touch(list)
	return s.save(ctx)
}

func (s *Session) SetActiveList(ctx context.Context, id domain.ListID) error {
	if s.hub.FindList(id) == nil {
		return domain.ErrListNotFound
	}

	s.hub.ActiveListID = id
	return s.save(ctx)
}

// ClearActiveList returns the session to the hub-level view.
func (s *Session) ClearActiveList(ctx context.Context) error {
	s.hub.ActiveListID = ""
	return s.save(ctx)
}

// ArchiveList soft-deletes the list; it stays restorable for the
// retention window. Archiving the active list clears the selection.
func (s *Session) ArchiveList(ctx context.Context, id domain.ListID) error {
	list := s.hub.FindList(id)
	if list == nil {
		return domain.ErrListNotFound
	}

	now := s.clock.Now()
	list.ArchivedAt = &now
	if s.hub.ActiveListID == id {
		s.hub.ActiveListID = ""
	}

	return s.save(ctx)
}

func (s *Session) RestoreList(ctx context.Context, id domain.ListID) error {
	list := s.hub.FindList(id)
	if list == nil {
		return domain.ErrListNotFound
	}

	list.ArchivedAt = nil
	return s.save(ctx)
}

// DeleteList removes the list from the hub irreversibly.
func (s *Session) DeleteList(ctx context.Context, id domain.ListID) error {
	if !s.hub.RemoveList(id) {
		return domain.ErrListNotFound
	}

	return s.save(ctx)
}

func (s *Session) AddParticipant(ctx context.Context, listID domain.ListID, name string) error {
	list := s.hub.FindList(listID)
	if list == nil {
		return domain.ErrListNotFound
	}

	if !list.AddParticipant(name) {
		return nil
	}

	s.touch(list)
	return s.save(ctx)
}

// RemoveParticipant cascades: the participant is cleared as owner on
// every checkpoint and dropped from every subtask's sign-off map in
// this list only, then the list is re-normalized.
func (s *Session) RemoveParticipant(ctx context.Context, listID domain.ListID, name string) error {
	list := s.hub.FindList(listID)
	if list == nil {
		return domain.ErrListNotFound
	}

	list.RemoveParticipant(name)
	s.hub.Normalize()
	s.touch(list)
	return s.save(ctx)
}

func (s *Session) AddCheckpoint(ctx context.Context, listID domain.ListID, name string) (*domain.Checkpoint, error) {
	list := s.hub.FindList(listID)
	if list == nil {
		return nil, domain.ErrListNotFound
	}

	checkpoint := domain.NewCheckpoint(name)
	list.Checkpoints = append(list.Checkpoints, checkpoint)
	s.touch(list)

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	return checkpoint, nil
}

func (s *Session) RenameCheckpoint(ctx context.Context, listID domain.ListID, id domain.CheckpointID, name string) error {
	list, checkpoint, err := s.findCheckpoint(listID, id)
	if err != nil {
		return err
	}

	checkpoint.Name = name
	s.touch(list)
	return s.save(ctx)
}

// MoveCheckpoint removes the checkpoint at from and reinserts it at
// to. An out-of-bounds to is clamped into the valid range after
// removal; an out-of-bounds from is an error.
func (s *Session) MoveCheckpoint(ctx context.Context, listID domain.ListID, from, to int) error {
	list := s.hub.FindList(listID)
	if list == nil {
		return domain.ErrListNotFound
	}

	if from < 0 || from >= len(list.Checkpoints) {
		return fmt.Errorf("move checkpoint: index %d out of range", from)
	}

	moved := list.Checkpoints[from]
	remaining := append(list.Checkpoints[:from], list.Checkpoints[from+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(remaining) {
		to = len(remaining)
	}

	list.Checkpoints = append(remaining[:to], append([]*domain.Checkpoint{moved}, remaining[to:]...)...)
	s.touch(list)
	return s.save(ctx)
}

func (s *Session) DeleteCheckpoint(ctx context.Context, listID domain.ListID, id domain.CheckpointID) error {
	list := s.hub.FindList(listID)
	if list == nil {
		return domain.ErrListNotFound
	}

	for i, c := range list.Checkpoints {
		if c.ID != id {
			continue
		}
		list.Checkpoints = append(list.Checkpoints[:i], list.Checkpoints[i+1:]...)
		s.touch(list)
		return s.save(ctx)
	}

	return domain.ErrCheckpointNotFound
}

// SetCheckpointOwner assigns the owner directly, empty meaning none.
// No validation against the participant list happens here; a dangling
// owner is repaired by the normalizer on the next pass.
func (s *Session) SetCheckpointOwner(ctx context.Context, listID domain.ListID, id domain.CheckpointID, owner string) error {
	list, checkpoint, err := s.findCheckpoint(listID, id)
	if err != nil {
		return err
	}

	checkpoint.Owner = owner
	s.touch(list)
	return s.save(ctx)
}

func (s *Session) ToggleCheckpointExpanded(ctx context.Context, listID domain.ListID, id domain.CheckpointID) error {
	list, checkpoint, err := s.findCheckpoint(listID, id)
	if err != nil {
		return err
	}

	checkpoint.Expanded = !checkpoint.Expanded
	s.touch(list)
	return s.save(ctx)
}

// AddSubtask appends a subtask with the given initial sign-off map to
// a checkpoint of the active list.
func (s *Session) AddSubtask(ctx context.Context, checkpointID domain.CheckpointID, name string, participants map[string]bool) (*domain.Subtask, error) {
	list := s.hub.ActiveList()
	if list == nil {
		return nil, nil
	}

	checkpoint := list.FindCheckpoint(checkpointID)
	if checkpoint == nil {
		return nil, domain.ErrCheckpointNotFound
	}

	subtask := domain.NewSubtask(name, participants)
	checkpoint.Subtasks = append(checkpoint.Subtasks, subtask)
	checkpoint.SyncDone()
	s.touch(list)

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	return subtask, nil
}

func (s *Session) RenameSubtask(ctx context.Context, checkpointID domain.CheckpointID, id domain.SubtaskID, name string) error {
	list, _, subtask, err := s.findSubtask(checkpointID, id)
	if err != nil || subtask == nil {
		return err
	}

	subtask.Name = name
	s.touch(list)
	return s.save(ctx)
}

// ToggleParticipantDone flips one participant's sign-off. Toggling a
// participant with no entry assigns and completes them in one step.
func (s *Session) ToggleParticipantDone(ctx context.Context, checkpointID domain.CheckpointID, id domain.SubtaskID, participant string) error {
	list, checkpoint, subtask, err := s.findSubtask(checkpointID, id)
	if err != nil || subtask == nil {
		return err
	}

	subtask.Toggle(participant)
	checkpoint.SyncDone()
	s.touch(list)
	return s.save(ctx)
}

func (s *Session) CheckAllSubtaskParticipants(ctx context.Context, checkpointID domain.CheckpointID, id domain.SubtaskID) error {
	list, checkpoint, subtask, err := s.findSubtask(checkpointID, id)
	if err != nil || subtask == nil {
		return err
	}

	subtask.CheckAll()
	checkpoint.SyncDone()
	s.touch(list)
	return s.save(ctx)
}

func (s *Session) findCheckpoint(listID domain.ListID, id domain.CheckpointID) (*domain.List, *domain.Checkpoint, error) {
	list := s.hub.FindList(listID)
	if list == nil {
		return nil, nil, domain.ErrListNotFound
	}

	checkpoint := list.FindCheckpoint(id)
	if checkpoint == nil {
		return nil, nil, domain.ErrCheckpointNotFound
	}

	return list, checkpoint, nil
}

// findSubtask resolves a subtask within the active list. A nil list
// with a nil error means there is no active list and the caller
// should no-op.
func (s *Session) findSubtask(checkpointID domain.CheckpointID, id domain.SubtaskID) (*domain.List, *domain.Checkpoint, *domain.Subtask, error) {
	list := s.hub.ActiveList()
	if list == nil {
		return nil, nil, nil, nil
	}

	checkpoint := list.FindCheckpoint(checkpointID)
	if checkpoint == nil {
		return nil, nil, nil, domain.ErrCheckpointNotFound
	}

	subtask := checkpoint.FindSubtask(id)
	if subtask == nil {
		return nil, nil, nil, domain.ErrSubtaskNotFound
	}

	return list, checkpoint, subtask, nil
}
