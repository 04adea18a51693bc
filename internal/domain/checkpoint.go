package domain

type CheckpointID string

// Checkpoint is a milestone with an optional owner and a sequence of
// subtasks. Done is derived, never set directly: it is true iff there
// is at least one subtask and every subtask is complete.
type Checkpoint struct {
	ID       CheckpointID
	Name     string
	Expanded bool
	Owner    string
	Subtasks []*Subtask
	Done     bool
}

func NewCheckpoint(name string) *Checkpoint {
	return &Checkpoint{
		ID:       NewCheckpointID(),
		Name:     name,
		Expanded: true,
		Subtasks: []*Subtask{},
	}
}

func (c *Checkpoint) FindSubtask(id SubtaskID) *Subtask {
	for _, st := range c.Subtasks {
		if st.ID == id {
			return st
		}
	}

	return nil
}

// Progress reports how many subtasks are complete out of the total.
func (c *Checkpoint) Progress() (completed, total int) {
	total = len(c.Subtasks)
	for _, st := range c.Subtasks {
		if st.Complete() {
			completed++
		}
	}

	return completed, total
}

// SyncDone recomputes the derived completion flag.
func (c *Checkpoint) SyncDone() {
	completed, total := c.Progress()
	c.Done = total > 0 && completed == total
}
