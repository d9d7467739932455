package tui

import (
	"fmt"
	"strings"

	"contactdesk/pkg/models"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// listState manages cursor and loading state for the list pane. The
// contacts themselves live in the roster; the pane renders whatever
// snapshot it is handed, so optimistic removals show up immediately.
type listState struct {
	cursor  int
	loading bool
	err     error
}

func newListState() listState {
	return listState{loading: true}
}

// applyRefresh settles a refresh into the pane state.
func (ls listState) applyRefresh(err error) listState {
	ls.loading = false
	ls.err = err
	return ls
}

// clampCursor keeps the cursor inside the current snapshot after
// optimistic removals and refreshes shrink the list.
func (ls listState) clampCursor(n int) listState {
	if ls.cursor >= n {
		ls.cursor = n - 1
	}
	if ls.cursor < 0 {
		ls.cursor = 0
	}
	return ls
}

func (ls listState) moveCursor(delta, n int) listState {
	if n == 0 {
		return ls
	}
	ls.cursor = (ls.cursor + delta + n) % n
	return ls
}

// selected returns the contact under the cursor, if any.
func (ls listState) selected(contacts []models.Contact) (models.Contact, bool) {
	if len(contacts) == 0 || ls.cursor < 0 || ls.cursor >= len(contacts) {
		return models.Contact{}, false
	}
	return contacts[ls.cursor], true
}

// View renders the list pane from a roster snapshot. deleting reports
// whether a given id has a delete in flight.
func (ls listState) View(contacts []models.Contact, deleting func(string) bool, width, height int) string {
	if ls.loading {
		return "Loading contacts..."
	}
	if ls.err != nil {
		return ErrorText().Render("Could not load contacts") + "\n" + DimText().Render("press r to retry")
	}
	if len(contacts) == 0 {
		return "No contacts yet\n" + DimText().Render("Add your first contact using the form")
	}

	var b strings.Builder
	count := "contacts"
	if len(contacts) == 1 {
		count = "contact"
	}
	b.WriteString(fmt.Sprintf("Contacts  %s\n\n", DimText().Render(fmt.Sprintf("%d %s", len(contacts), count))))

	start, end := ls.window(contacts, height)
	for i := start; i < end; i++ {
		c := contacts[i]
		prefix := "  "
		if i == ls.cursor {
			prefix = CursorMarker
		}

		line := truncate(fmt.Sprintf("%s%s  %s  %s", prefix, c.Name, c.Email, c.Phone), width)
		if deleting(c.ID) {
			line = truncate(line, width-12) + DimText().Render("  deleting...")
		}
		b.WriteString(line + "\n")

		if i == ls.cursor {
			if detail := detailLine(c); detail != "" {
				b.WriteString(DimText().Render(truncate(detail, width)) + "\n")
			}
		}
	}

	return b.String()
}

// window picks the contiguous run of contacts that fits the pane
// height, scrolled so the cursor row and its detail line stay visible.
// The header costs two lines.
func (ls listState) window(contacts []models.Contact, height int) (start, end int) {
	if height <= 0 {
		return 0, len(contacts)
	}

	avail := height - 2
	if ls.cursor >= 0 && ls.cursor < len(contacts) && detailLine(contacts[ls.cursor]) != "" {
		avail--
	}
	if avail < 1 {
		avail = 1
	}
	if len(contacts) <= avail {
		return 0, len(contacts)
	}

	start = 0
	if ls.cursor >= avail {
		start = ls.cursor - avail + 1
	}
	end = start + avail
	if end > len(contacts) {
		end = len(contacts)
	}
	return start, end
}

// detailLine is the dimmed second row shown under the cursor.
func detailLine(c models.Contact) string {
	detail := "  "
	if c.Message != "" {
		detail += c.Message + "  "
	}
	if !c.CreatedAt.IsZero() {
		detail += "added " + c.CreatedAt.Format("Jan 2, 2006 15:04")
	}
	if detail == "  " {
		return ""
	}
	return detail
}

// truncate cuts a plain (unstyled) line to the pane width.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
