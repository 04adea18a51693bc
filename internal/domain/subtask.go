package domain

type SubtaskID string

// Subtask is a unit of work requiring per-participant sign-off.
// Participants maps a participant name to a completion flag; absence
// of a key means the participant is not assigned to this subtask.
type Subtask struct {
	ID           SubtaskID
	Name         string
	Participants map[string]bool
}

func NewSubtask(name string, participants map[string]bool) *Subtask {
	if participants == nil {
		participants = map[string]bool{}
	}

	return &Subtask{
		ID:           NewSubtaskID(),
		Name:         name,
		Participants: participants,
	}
}

// Complete reports whether the subtask has at least one assigned
// participant and all of them have signed off.
func (s *Subtask) Complete() bool {
	if len(s.Participants) == 0 {
		return false
	}
	for _, done := range s.Participants {
		if !done {
			return false
		}
	}

	return true
}

// Toggle flips the sign-off flag for participant. Toggling a
// participant that is not assigned assigns and completes them in one
// step.
func (s *Subtask) Toggle(participant string) {
	if s.Participants == nil {
		s.Participants = map[string]bool{}
	}
	s.Participants[participant] = !s.Participants[participant]
}

// CheckAll marks every assigned participant as done.
func (s *Subtask) CheckAll() {
	for name := range s.Participants {
		s.Participants[name] = true
	}
}
