package application

import "github.com/Spaaern/pubcrawl-cli/internal/domain"

func (s *Session) Hub() *domain.Hub {
	return s.hub
}

// ActiveList returns nil when no list is selected.
func (s *Session) ActiveList() *domain.List {
	return s.hub.ActiveList()
}

// Lists returns the non-archived lists in display order.
func (s *Session) Lists() []*domain.List {
	lists := make([]*domain.List, 0, len(s.hub.Lists))
	for _, l := range s.hub.Lists {
		if !l.Archived() {
			lists = append(lists, l)
		}
	}

	return lists
}

func (s *Session) ArchivedLists() []*domain.List {
	lists := make([]*domain.List, 0)
	for _, l := range s.hub.Lists {
		if l.Archived() {
			lists = append(lists, l)
		}
	}

	return lists
}

// Scores returns the active list's per-participant sign-off counts,
// or nil when no list is active.
func (s *Session) Scores() map[string]int {
	list := s.hub.ActiveList()
	if list == nil {
		return nil
	}

	return list.Scores()
}
