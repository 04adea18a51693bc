package domain

const (
	UnnamedCheckpoint = "Unnamed checkpoint"
	UnnamedSubtask    = "Unnamed subtask"
)

// Normalize repairs the hub in place so every schema invariant holds:
// missing ids and names get defaults, owners and sign-off entries that
// reference removed participants are dropped, and every checkpoint's
// derived completion flag is recomputed. Referential-integrity
// violations are never errors; they are silently repaired here.
//
// Normalize is idempotent and must run after every load, import, and
// participant removal, since those are the operations that can
// introduce dangling references or missing defaults.
func (h *Hub) Normalize() {
	if h.Version == 0 {
		h.Version = SchemaVersion
	}
	if h.Lists == nil {
		h.Lists = []*List{}
	}
	for _, l := range h.Lists {
		l.normalize()
	}
}

func (l *List) normalize() {
	if l.ID == "" {
		l.ID = NewListID()
	}
	if l.Participants == nil {
		l.Participants = []string{}
	}
	if l.Checkpoints == nil {
		l.Checkpoints = []*Checkpoint{}
	}

	for _, c := range l.Checkpoints {
		if c.ID == "" {
			c.ID = NewCheckpointID()
		}
		if c.Name == "" {
			c.Name = UnnamedCheckpoint
		}
		if c.Owner != "" && !l.HasParticipant(c.Owner) {
			c.Owner = ""
		}
		if c.Subtasks == nil {
			c.Subtasks = []*Subtask{}
		}

		for _, st := range c.Subtasks {
			if st.ID == "" {
				st.ID = NewSubtaskID()
			}
			if st.Name == "" {
				st.Name = UnnamedSubtask
			}
			if st.Participants == nil {
				st.Participants = map[string]bool{}
			}
			for name := range st.Participants {
				if !l.HasParticipant(name) {
					delete(st.Participants, name)
				}
			}
		}

		c.SyncDone()
	}
}
