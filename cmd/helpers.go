package cmd

import (
	"fmt"
	"io"

	"github.com/Spaaern/pubcrawl-cli/internal/application"
	"github.com/Spaaern/pubcrawl-cli/internal/domain"
)

// resolveList picks the explicitly-flagged list, falling back to the
// active one. Operations with no resolvable list are silent no-ops;
// the notice goes to the presentation surface, not to an error.
func resolveList(session *application.Session, listFlag string, out io.Writer) (*domain.List, bool) {
	if listFlag != "" {
		list := session.Hub().FindList(domain.ListID(listFlag))
		if list != nil {
			return list, true
		}
		_, _ = fmt.Fprintf(out, "list %s not found\n", listFlag)
		return nil, false
	}

	list := session.ActiveList()
	if list == nil {
		_, _ = fmt.Fprintln(out, "no active list selected (use 'pc list use ID')")
		return nil, false
	}

	return list, true
}
