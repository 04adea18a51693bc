package domain

import "time"

type ListID string

// List is a named collection of participants and ordered checkpoints.
// Owned exclusively by the Hub.
type List struct {
	ID           ListID
	Name         string
	Participants []string
	Checkpoints  []*Checkpoint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ArchivedAt   *time.Time
}

func NewList(name string, now time.Time) *List {
	return &List{
		ID:           NewListID(),
		Name:         name,
		Participants: []string{},
		Checkpoints:  []*Checkpoint{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (l *List) Archived() bool {
	return l.ArchivedAt != nil
}

func (l *List) HasParticipant(name string) bool {
	for _, p := range l.Participants {
		if p == name {
			return true
		}
	}

	return false
}

// AddParticipant appends name unless it is empty or already present
// (case-sensitive exact match). Reports whether the list changed.
func (l *List) AddParticipant(name string) bool {
	if name == "" || l.HasParticipant(name) {
		return false
	}

	l.Participants = append(l.Participants, name)
	return true
}

// RemoveParticipant removes name from the list and cascades: clears it
// as owner on every checkpoint and deletes its sign-off entry from
// every subtask, then recomputes checkpoint completion.
func (l *List) RemoveParticipant(name string) {
	kept := make([]string, 0, len(l.Participants))
	for _, p := range l.Participants {
		if p != name {
			kept = append(kept, p)
		}
	}
	l.Participants = kept

	for _, c := range l.Checkpoints {
		if c.Owner == name {
			c.Owner = ""
		}
		for _, st := range c.Subtasks {
			delete(st.Participants, name)
		}
		c.SyncDone()
	}
}

func (l *List) FindCheckpoint(id CheckpointID) *Checkpoint {
	for _, c := range l.Checkpoints {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// Scores counts completed sign-offs per participant across the whole
// list, for the scoreboard.
func (l *List) Scores() map[string]int {
	scores := make(map[string]int)
	for _, c := range l.Checkpoints {
		for _, st := range c.Subtasks {
			for name, done := range st.Participants {
				if _, ok := scores[name]; !ok {
					scores[name] = 0
				}
				if done {
					scores[name]++
				}
			}
		}
	}

	return scores
}
