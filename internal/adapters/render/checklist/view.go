// Package checklist renders hub and list views for the terminal.
package checklist

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// ShowCollapsed renders subtasks of collapsed checkpoints too.
	ShowCollapsed bool
}

// RenderList renders one list: checkpoints with progress bars, owner
// labels, per-participant sign-off marks, and the scoreboard.
func RenderList(list *domain.List, opts RenderOptions) string {
	return renderList(list, opts, newStyles())
}

// RenderHub renders the hub-level overview of all lists.
func RenderHub(hub *domain.Hub, opts RenderOptions) string {
	return renderHub(hub, opts, newStyles())
}

func renderList(list *domain.List, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(list.Name),
		s.header.Render(fmt.Sprintf("participants: %s", participantLabel(list.Participants))),
	}

	if len(list.Checkpoints) == 0 {
		lines = append(lines, s.empty.Render("No checkpoints yet."))
	}

	for _, c := range list.Checkpoints {
		lines = append(lines, s.section.Render(renderCheckpoint(c, opts, s)))
	}

	if scoreboard := renderScoreboard(list.Scores(), s); scoreboard != "" {
		lines = append(lines, s.section.Render(scoreboard))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCheckpoint(c *domain.Checkpoint, opts RenderOptions, s styles) string {
	completed, total := c.Progress()

	header := []string{checkBox(c.Done, s), " "}
	if c.Done {
		header = append(header, s.done.Render(c.Name))
	} else {
		header = append(header, s.checkpoint.Render(c.Name))
	}
	if total > 0 {
		header = append(header, " ", renderProgressBar(completed, total, 16, s))
		header = append(header, " ", s.owner.Render(fmt.Sprintf("%d/%d", completed, total)))
	}
	if c.Owner != "" {
		header = append(header, " ", s.owner.Render("owner: "+c.Owner))
	}
	if !c.Expanded {
		header = append(header, " ", s.collapsed.Render("(collapsed)"))
	}

	parts := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	if c.Expanded || opts.ShowCollapsed {
		for _, st := range c.Subtasks {
			parts = append(parts, renderSubtask(st, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSubtask(st *domain.Subtask, s styles) string {
	marks := make([]string, 0, len(st.Participants))
	for _, name := range sortedKeys(st.Participants) {
		if st.Participants[name] {
			marks = append(marks, s.signedOff.Render("[x] "+name))
		} else {
			marks = append(marks, s.pending.Render("[ ] "+name))
		}
	}

	line := "  " + checkBox(st.Complete(), s) + " " + s.subtask.Render(st.Name)
	if len(marks) > 0 {
		line += "  " + strings.Join(marks, "  ")
	} else {
		line += "  " + s.empty.Render("(unassigned)")
	}

	return line
}

func renderScoreboard(scores map[string]int, s styles) string {
	if len(scores) == 0 {
		return ""
	}

	names := sortedByScore(scores)
	lines := []string{s.header.Render("scoreboard")}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %s %s",
			s.scoreName.Render(name+":"),
			s.scoreValue.Render(fmt.Sprintf("%d", scores[name]))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHub(hub *domain.Hub, opts RenderOptions, s styles) string {
	active, archived := 0, 0
	for _, l := range hub.Lists {
		if l.Archived() {
			archived++
		} else {
			active++
		}
	}

	lines := []string{
		s.title.Render("Lists"),
		s.header.Render(fmt.Sprintf("lists: %d (archived: %d)", active, archived)),
	}

	if len(hub.Lists) == 0 {
		lines = append(lines, s.empty.Render("No lists yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, l := range hub.Lists {
		lines = append(lines, renderListLine(l, hub.ActiveListID, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderListLine(l *domain.List, activeID domain.ListID, opts RenderOptions, s styles) string {
	doneCount := 0
	for _, c := range l.Checkpoints {
		if c.Done {
			doneCount++
		}
	}

	parts := []string{
		s.checkpoint.Render(l.Name),
		" ",
		s.owner.Render(fmt.Sprintf("(%s)", l.ID)),
		" ",
		s.header.Render(fmt.Sprintf("%d/%d checkpoints done", doneCount, len(l.Checkpoints))),
	}

	if l.ID == activeID {
		parts = append(parts, " ", s.active.Render("* active"))
	}
	if l.ArchivedAt != nil {
		parts = append(parts, " ", s.archiveNote.Render(archiveLabel(*l.ArchivedAt, opts.Now)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func archiveLabel(archivedAt, now time.Time) string {
	if now.IsZero() {
		return "archived"
	}

	days := int(math.Floor(now.Sub(archivedAt).Hours() / 24))
	if days < 1 {
		return "archived today"
	}
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}

	return fmt.Sprintf("archived %d %s ago", days, suffix)
}

func renderProgressBar(completed, total, width int, s styles) string {
	if width <= 0 || total <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(completed) / float64(total)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func checkBox(done bool, s styles) string {
	if done {
		return s.signedOff.Render("[x]")
	}

	return s.pending.Render("[ ]")
}

func participantLabel(participants []string) string {
	if len(participants) == 0 {
		return "none"
	}

	return strings.Join(participants, ", ")
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedByScore orders names by score descending, name ascending on
// ties so output is stable.
func sortedByScore(scores map[string]int) []string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	return names
}
