package domain

import "time"

// SchemaVersion is the version stamped into the persisted hub document
// and every export payload.
const SchemaVersion = 1

// Hub is the root aggregate: every list the session knows about, plus
// which one is currently selected. It is loaded once at startup and
// saved whole after every mutation.
type Hub struct {
	Version      int
	Lists        []*List
	ActiveListID ListID
}

func NewHub() *Hub {
	return &Hub{Version: SchemaVersion, Lists: []*List{}}
}

func (h *Hub) FindList(id ListID) *List {
	for _, l := range h.Lists {
		if l.ID == id {
			return l
		}
	}

	return nil
}

// ActiveList returns the selected list, or nil when nothing is active
// or the selection points at a list that no longer exists.
func (h *Hub) ActiveList() *List {
	if h.ActiveListID == "" {
		return nil
	}

	return h.FindList(h.ActiveListID)
}

func (h *Hub) RemoveList(id ListID) bool {
	for i, l := range h.Lists {
		if l.ID != id {
			continue
		}
		h.Lists = append(h.Lists[:i], h.Lists[i+1:]...)
		if h.ActiveListID == id {
			h.ActiveListID = ""
		}
		return true
	}

	return false
}

// PruneExpiredArchives drops every archived list whose archivedAt is
// older than the retention window, returning how many were removed.
func (h *Hub) PruneExpiredArchives(now time.Time, window time.Duration) int {
	kept := make([]*List, 0, len(h.Lists))
	pruned := 0
	for _, l := range h.Lists {
		if l.ArchivedAt != nil && now.Sub(*l.ArchivedAt) > window {
			if h.ActiveListID == l.ID {
				h.ActiveListID = ""
			}
			pruned++
			continue
		}
		kept = append(kept, l)
	}

	h.Lists = kept
	return pruned
}
