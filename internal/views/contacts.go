package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rhystmorgan/veContacts/internal/contacts"
	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/simulator"
	"rhystmorgan/veContacts/internal/utils"
)

const (
	defaultWidth    = 80
	defaultPageSize = 6

	// Lines a collapsed contact row occupies; used to size the page.
	contactRowHeight = 3
	listChromeHeight = 12
)

type ContactListModel struct {
	contacts []models.Contact
	filtered []models.Contact
	cursor   int
	offset   int
	expanded string

	searchInput textinput.Model

	width  int
	height int
}

// OpenActionMsg asks the app to open the action modal for a contact.
type OpenActionMsg struct {
	Contact models.Contact
	Kind    simulator.Kind
}

// ShowFormMsg asks the app to open the add contact form.
type ShowFormMsg struct{}

func NewContactListModel() *ContactListModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search contacts..."
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 50
	searchInput.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))
	searchInput.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))

	return &ContactListModel{
		contacts:    []models.Contact{},
		filtered:    []models.Contact{},
		searchInput: searchInput,
	}
}

// SetContacts replaces the full contact set and re-applies the search term.
func (m *ContactListModel) SetContacts(all []models.Contact) {
	m.contacts = all
	m.applyFilter()
}

func (m *ContactListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

func (m *ContactListModel) Update(msg tea.Msg) (*ContactListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searchInput.Focused() {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searchInput.Focused() {
		return m.updateSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "/":
		return m, m.searchInput.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "enter", " ":
		if contact, ok := m.Selected(); ok {
			if m.expanded == contact.ID {
				m.expanded = ""
			} else {
				m.expanded = contact.ID
			}
		}

	case "c":
		return m, m.openAction(simulator.KindCall)
	case "m":
		return m, m.openAction(simulator.KindMessage)
	case "v":
		return m, m.openAction(simulator.KindVideo)

	case "a", "n":
		return m, func() tea.Msg { return ShowFormMsg{} }

	case "esc":
		m.ClearSearch()
	}

	return m, nil
}

func (m *ContactListModel) updateSearch(msg tea.KeyMsg) (*ContactListModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "down":
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *ContactListModel) openAction(kind simulator.Kind) tea.Cmd {
	contact, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return OpenActionMsg{Contact: contact, Kind: kind}
	}
}

// ClearSearch empties the search box and shows every contact again.
func (m *ContactListModel) ClearSearch() {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.applyFilter()
}

func (m *ContactListModel) applyFilter() {
	m.filtered = contacts.Filter(m.contacts, m.SearchTerm())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
	m.clampOffset()
}

func (m *ContactListModel) pageSize() int {
	if m.height <= 0 {
		return defaultPageSize
	}
	return max((m.height-listChromeHeight)/contactRowHeight, 1)
}

func (m *ContactListModel) clampOffset() {
	size := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+size {
		m.offset = m.cursor - size + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *ContactListModel) Selected() (models.Contact, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return models.Contact{}, false
	}
	return m.filtered[m.cursor], true
}

func (m *ContactListModel) SearchTerm() string         { return m.searchInput.Value() }
func (m *ContactListModel) SearchFocused() bool        { return m.searchInput.Focused() }
func (m *ContactListModel) Filtered() []models.Contact { return m.filtered }
func (m *ContactListModel) Cursor() int                { return m.cursor }
func (m *ContactListModel) Expanded() string           { return m.expanded }

func (m *ContactListModel) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var content strings.Builder

	content.WriteString(m.renderHeader(width))
	content.WriteString("\n")
	content.WriteString(m.renderSearchBar(width))
	content.WriteString("\n\n")

	summary := contacts.Summarize(len(m.filtered), len(m.contacts), m.SearchTerm())
	if summary.Empty() {
		content.WriteString(m.renderEmptyState(summary))
	} else {
		if m.SearchTerm() != "" {
			resultStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(utils.Colours.Lavender)).
				Bold(true).
				Padding(0, 1)
			content.WriteString(resultStyle.Render(summary.ResultLine() + "  (esc: clear)"))
			content.WriteString("\n")
		}
		content.WriteString(m.renderContactList(width))
	}

	content.WriteString("\n")
	content.WriteString(m.renderFooter(summary))

	return content.String()
}

func (m *ContactListModel) renderHeader(width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(utils.Colours.Mauve))

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0))

	headerStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(utils.Colours.Surface0)).
		Padding(0, 1).
		Width(width)

	return headerStyle.Render(
		titleStyle.Render("Contacts") + "  " + countStyle.Render(contacts.TotalLine(len(m.contacts))),
	)
}

func (m *ContactListModel) renderSearchBar(width int) string {
	borderColour := utils.Colours.Surface1
	if m.searchInput.Focused() {
		borderColour = utils.Colours.Blue
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColour)).
		Padding(0, 1).
		Width(min(width-2, 60))

	return searchStyle.Render(m.searchInput.View())
}

func (m *ContactListModel) renderEmptyState(summary contacts.Summary) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(utils.Colours.Text))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Overlay1))

	lines := []string{
		titleStyle.Render(summary.EmptyTitle()),
		hintStyle.Render(summary.EmptyHint()),
	}
	if summary.NoMatches() {
		lines = append(lines, hintStyle.Render("Press esc to clear the search"))
	}

	return lipgloss.NewStyle().
		Padding(2, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *ContactListModel) renderContactList(width int) string {
	end := min(m.offset+m.pageSize(), len(m.filtered))

	items := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		items = append(items, m.renderContactItem(m.filtered[i], i == m.cursor, width))
	}

	return strings.Join(items, "\n")
}

func (m *ContactListModel) renderContactItem(contact models.Contact, isSelected bool, width int) string {
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Width(width - 4).
		Border(lipgloss.HiddenBorder())

	if isSelected {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(utils.Colours.Blue)).
			Background(lipgloss.Color(utils.Colours.Surface0))
	}

	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(utils.Colours.Text))

	emailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Overlay1))

	indicator := "▾"
	expanded := m.expanded == contact.ID
	if expanded {
		indicator = "▴"
	}

	nameLine := fmt.Sprintf("%s %s %s",
		renderAvatar(contact.Name),
		nameStyle.Render(utils.TruncateString(contact.Name, width-16)),
		emailStyle.Render(indicator),
	)

	email := contact.Email
	if email == "" {
		email = "no email"
	}

	lines := []string{nameLine, "     " + emailStyle.Render("✉ "+email)}
	if expanded {
		lines = append(lines, m.renderDetails(contact)...)
	}

	return style.Render(strings.Join(lines, "\n"))
}

func (m *ContactListModel) renderDetails(contact models.Contact) []string {
	phoneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text))

	button := func(key, label, colour string) string {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Base)).
			Background(lipgloss.Color(colour)).
			Padding(0, 1).
			Render(fmt.Sprintf("[%s] %s", key, label))
	}

	return []string{
		"     " + phoneStyle.Render("☎ "+contact.Phone),
		"     " + lipgloss.JoinHorizontal(lipgloss.Left,
			button("c", "Call", utils.Colours.Green), " ",
			button("m", "Message", utils.Colours.Blue), " ",
			button("v", "Video", utils.Colours.Mauve),
		),
	}
}

func (m *ContactListModel) renderFooter(summary contacts.Summary) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Overlay1)).
		Padding(0, 1)

	var lines []string
	if summary.Total > 0 {
		lines = append(lines, footerStyle.Render(summary.FooterLine()))
	}

	hints := utils.FormatKeyHints(
		utils.KeyHint{Key: "↑/↓", Desc: "navigate"},
		utils.KeyHint{Key: "enter", Desc: "details"},
		utils.KeyHint{Key: "c/m/v", Desc: "call/message/video"},
		utils.KeyHint{Key: "/", Desc: "search"},
		utils.KeyHint{Key: "a", Desc: "add"},
		utils.KeyHint{Key: "q", Desc: "quit"},
	)
	lines = append(lines, footerStyle.Render(hints))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// avatar returns the contact's initials and the style that paints them on
// the avatar colour for name.
func avatar(name string) (string, lipgloss.Style) {
	colour := utils.AvatarColour(models.AvatarColourIndex(name, len(utils.AvatarPalette)))
	initials := models.Initials(name)
	if initials == "" {
		initials = "?"
	}

	return initials, lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(utils.Colours.Base)).
		Background(lipgloss.Color(colour))
}

func renderAvatar(name string) string {
	initials, style := avatar(name)
	return style.Width(4).Align(lipgloss.Center).Render(initials)
}
