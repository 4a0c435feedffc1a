package contacts

import (
	"fmt"
	"strings"

	"rhystmorgan/veContacts/internal/models"
)

// Filter returns the contacts whose name contains term, ignoring case, in
// their original order. Only the name is matched.
func Filter(contacts []models.Contact, term string) []models.Contact {
	if term == "" {
		return contacts
	}

	needle := strings.ToLower(term)
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Summary describes a filtered view for the list header, footer and empty
// state.
type Summary struct {
	Shown int
	Total int
	Term  string
}

func Summarize(shown, total int, term string) Summary {
	return Summary{Shown: shown, Total: total, Term: term}
}

func (s Summary) Empty() bool {
	return s.Shown == 0
}

// NoMatches is true when a search term hid every contact.
func (s Summary) NoMatches() bool {
	return s.Empty() && s.Term != ""
}

func (s Summary) EmptyTitle() string {
	if s.Term != "" {
		return "No matches found"
	}
	return "No contacts yet"
}

func (s Summary) EmptyHint() string {
	if s.Term != "" {
		return fmt.Sprintf("No contacts match %q", s.Term)
	}
	return "Add your first contact to get started"
}

func (s Summary) ResultLine() string {
	return fmt.Sprintf("Found %d %s", s.Shown, pluralize(s.Shown, "result", "results"))
}

func (s Summary) FooterLine() string {
	return fmt.Sprintf("Showing %d of %d contacts", s.Shown, s.Total)
}

func TotalLine(total int) string {
	return fmt.Sprintf("%d %s total", total, pluralize(total, "contact", "contacts"))
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
