package contacts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rhystmorgan/veContacts/internal/models"
)

func TestFilter(t *testing.T) {
	list := []models.Contact{
		{ID: "1", Name: "Leanne Graham", Email: "zz@example.com"},
		{ID: "2", Name: "Ervin Howell"},
		{ID: "3", Name: "Clementine Bauch", Phone: "zz"},
		{ID: "4", Name: "GRAHAM Bell"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term returns everything", term: "", want: []string{"1", "2", "3", "4"}},
		{name: "case insensitive", term: "graham", want: []string{"1", "4"}},
		{name: "upper term", term: "ERVIN", want: []string{"2"}},
		{name: "substring", term: "ent", want: []string{"3"}},
		{name: "shared letters keep order", term: "e", want: []string{"1", "2", "3", "4"}},
		{name: "email and phone are not searched", term: "zz", want: []string{}},
		{name: "spaces count", term: "e g", want: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(list, tt.term)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterProperties(t *testing.T) {
	list := []models.Contact{
		{ID: "1", Name: "Ann"}, {ID: "2", Name: "anna"}, {ID: "3", Name: "Bob"},
		{ID: "4", Name: "Hannah"}, {ID: "5", Name: ""}, {ID: "6", Name: "NAN"},
	}

	for _, term := range []string{"a", "AN", "nn", "b", "x", "Hannah", " "} {
		got := Filter(list, term)

		// Exactly the matching elements, in relative order.
		var want []models.Contact
		for _, c := range list {
			if strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
				want = append(want, c)
			}
		}
		if want == nil {
			want = []models.Contact{}
		}
		assert.Equal(t, want, got, "term %q", term)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := []models.Contact{{ID: "1", Name: "Ann"}, {ID: "2", Name: "Bob"}}
	Filter(list, "bob")
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
}

func TestSummary(t *testing.T) {
	noMatch := Summarize(0, 3, "zz")
	assert.True(t, noMatch.NoMatches())
	assert.Equal(t, "No matches found", noMatch.EmptyTitle())
	assert.Equal(t, `No contacts match "zz"`, noMatch.EmptyHint())

	empty := Summarize(0, 0, "")
	assert.True(t, empty.Empty())
	assert.False(t, empty.NoMatches())
	assert.Equal(t, "No contacts yet", empty.EmptyTitle())

	one := Summarize(1, 6, "ann")
	assert.Equal(t, "Found 1 result", one.ResultLine())
	assert.Equal(t, "Showing 1 of 6 contacts", one.FooterLine())
	assert.Equal(t, "Found 2 results", Summarize(2, 6, "a").ResultLine())

	assert.Equal(t, "1 contact total", TotalLine(1))
	assert.Equal(t, "6 contacts total", TotalLine(6))
}

func TestScenarioNoMatchesAgainstThreeContacts(t *testing.T) {
	list := threeBuiltins()
	got := Filter(list, "zz")
	assert.Empty(t, got)
	assert.True(t, Summarize(len(got), len(list), "zz").NoMatches())
}
