package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

// Records mirror the JSON shapes the original web app reads and
// writes: camelCase keys, epoch-millisecond timestamps, participant
// sign-offs as a name→bool object. Decoding is deliberately loose;
// each record converts into a fully-defaulted domain entity.

type hubRecord struct {
	Version      int          `json:"version"`
	Lists        []listRecord `json:"lists"`
	ActiveListID flexID       `json:"activeListId,omitempty"`
}

type listRecord struct {
	ID           flexID             `json:"id"`
	Name         string             `json:"name"`
	Participants []string           `json:"participants"`
	Checkpoints  []checkpointRecord `json:"checkpoints"`
	CreatedAt    int64              `json:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt,omitempty"`
	ArchivedAt   *int64             `json:"archivedAt,omitempty"`
}

type checkpointRecord struct {
	ID       flexID          `json:"id"`
	Name     string          `json:"name"`
	Expanded *bool           `json:"expanded,omitempty"`
	Owner    string          `json:"owner,omitempty"`
	Subtasks []subtaskRecord `json:"subtasks"`
	Done     bool            `json:"done,omitempty"`
}

type subtaskRecord struct {
	ID           flexID          `json:"id"`
	Name         string          `json:"name"`
	Participants map[string]bool `json:"participants"`
}

// flexID tolerates the original app's numeric identifiers
// (Date.now() + Math.random()) alongside string ones.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

func hubToRecord(h *domain.Hub) hubRecord {
	lists := make([]listRecord, 0, len(h.Lists))
	for _, l := range h.Lists {
		lists = append(lists, listToRecord(l))
	}

	return hubRecord{
		Version:      h.Version,
		Lists:        lists,
		ActiveListID: flexID(h.ActiveListID),
	}
}

func hubFromRecord(r hubRecord) *domain.Hub {
	lists := make([]*domain.List, 0, len(r.Lists))
	for _, entry := range r.Lists {
		lists = append(lists, listFromRecord(entry))
	}

	return &domain.Hub{
		Version:      r.Version,
		Lists:        lists,
		ActiveListID: domain.ListID(r.ActiveListID),
	}
}

func listToRecord(l *domain.List) listRecord {
	checkpoints := make([]checkpointRecord, 0, len(l.Checkpoints))
	for _, c := range l.Checkpoints {
		checkpoints = append(checkpoints, checkpointToRecord(c))
	}

	r := listRecord{
		ID:           flexID(l.ID),
		Name:         l.Name,
		Participants: l.Participants,
		Checkpoints:  checkpoints,
		CreatedAt:    timeToMillis(l.CreatedAt),
		UpdatedAt:    timeToMillis(l.UpdatedAt),
	}
	if l.Participants == nil {
		r.Participants = []string{}
	}
	if l.ArchivedAt != nil {
		millis := timeToMillis(*l.ArchivedAt)
		r.ArchivedAt = &millis
	}

	return r
}

func listFromRecord(r listRecord) *domain.List {
	checkpoints := make([]*domain.Checkpoint, 0, len(r.Checkpoints))
	for _, entry := range r.Checkpoints {
		checkpoints = append(checkpoints, checkpointFromRecord(entry))
	}

	participants := r.Participants
	if participants == nil {
		participants = []string{}
	}

	l := &domain.List{
		ID:           domain.ListID(r.ID),
		Name:         r.Name,
		Participants: participants,
		Checkpoints:  checkpoints,
		CreatedAt:    millisToTime(r.CreatedAt),
		UpdatedAt:    millisToTime(r.UpdatedAt),
	}
	if r.ArchivedAt != nil {
		archived := millisToTime(*r.ArchivedAt)
		l.ArchivedAt = &archived
	}

	return l
}

func checkpointToRecord(c *domain.Checkpoint) checkpointRecord {
	subtasks := make([]subtaskRecord, 0, len(c.Subtasks))
	for _, st := range c.Subtasks {
		subtasks = append(subtasks, subtaskToRecord(st))
	}

	expanded := c.Expanded
	return checkpointRecord{
		ID:       flexID(c.ID),
		Name:     c.Name,
		Expanded: &expanded,
		Owner:    c.Owner,
		Subtasks: subtasks,
		Done:     c.Done,
	}
}

func checkpointFromRecord(r checkpointRecord) *domain.Checkpoint {
	subtasks := make([]*domain.Subtask, 0, len(r.Subtasks))
	for _, entry := range r.Subtasks {
		subtasks = append(subtasks, subtaskFromRecord(entry))
	}

	// Expanded defaults to true when the field is absent; everything
	// else missing here (ids, names, done) is the normalizer's job.
	expanded := true
	if r.Expanded != nil {
		expanded = *r.Expanded
	}

	return &domain.Checkpoint{
		ID:       domain.CheckpointID(r.ID),
		Name:     r.Name,
		Expanded: expanded,
		Owner:    r.Owner,
		Subtasks: subtasks,
		Done:     r.Done,
	}
}

func subtaskToRecord(st *domain.Subtask) subtaskRecord {
	participants := st.Participants
	if participants == nil {
		participants = map[string]bool{}
	}

	return subtaskRecord{
		ID:           flexID(st.ID),
		Name:         st.Name,
		Participants: participants,
	}
}

func subtaskFromRecord(r subtaskRecord) *domain.Subtask {
	participants := r.Participants
	if participants == nil {
		participants = map[string]bool{}
	}

	return &domain.Subtask{
		ID:           domain.SubtaskID(r.ID),
		Name:         r.Name,
		Participants: participants,
	}
}

func timeToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.UnixMilli()
}

func millisToTime(millis int64) time.Time {
	if millis == 0 {
		return time.Time{}
	}

	return time.UnixMilli(millis).UTC()
}
