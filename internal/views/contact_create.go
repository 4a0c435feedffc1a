package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/utils"
	"rhystmorgan/veContacts/internal/validation"
)

type ContactFormField int

const (
	FormFieldName ContactFormField = iota
	FormFieldEmail
	FormFieldPhone
)

var formFieldKeys = []string{validation.FieldName, validation.FieldEmail, validation.FieldPhone}

// ContactFormModel is the add contact dialog. It owns the draft until the
// draft is submitted or cancelled.
type ContactFormModel struct {
	inputs  []textinput.Model
	focused ContactFormField
	rule    validation.Rule

	// Set after a rejected submit; field hints stay until the draft passes.
	result *validation.ValidationResult

	visible bool
	width   int
}

// ContactSubmittedMsg carries an accepted draft. The form has already been
// cleared and closed when this is delivered.
type ContactSubmittedMsg struct {
	Input models.ContactInput
}

type FormCancelledMsg struct{}

func NewContactFormModel(rule validation.Rule) *ContactFormModel {
	nameInput := newFormInput("John Doe", 50)
	emailInput := newFormInput("john@example.com", 100)
	phoneInput := newFormInput("+1 (555) 000-0000", 30)

	return &ContactFormModel{
		inputs: []textinput.Model{nameInput, emailInput, phoneInput},
		rule:   rule,
	}
}

func newFormInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
	return input
}

// Show opens the form with an empty draft and the name field focused.
func (m *ContactFormModel) Show() tea.Cmd {
	m.reset()
	m.visible = true
	return m.focusCurrentField()
}

func (m *ContactFormModel) Hide() {
	m.visible = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *ContactFormModel) IsVisible() bool {
	return m.visible
}

func (m *ContactFormModel) SetWidth(width int) {
	m.width = width
}

func (m *ContactFormModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focused = FormFieldName
	m.result = nil
}

// Input returns the current draft.
func (m *ContactFormModel) Input() models.ContactInput {
	return models.ContactInput{
		Name:  m.inputs[FormFieldName].Value(),
		Email: m.inputs[FormFieldEmail].Value(),
		Phone: m.inputs[FormFieldPhone].Value(),
	}
}

func (m *ContactFormModel) Focused() ContactFormField {
	return m.focused
}

// FieldError returns the inline hint shown under field, if any.
func (m *ContactFormModel) FieldError(field string) string {
	if m.result == nil {
		return ""
	}
	return m.result.FieldError(field)
}

func (m *ContactFormModel) Update(msg tea.Msg) (*ContactFormModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.reset()
		m.Hide()
		return m, func() tea.Msg { return FormCancelledMsg{} }

	case "tab", "down":
		m.nextField()
		return m, m.focusCurrentField()

	case "shift+tab", "up":
		m.prevField()
		return m, m.focusCurrentField()

	case "ctrl+s":
		return m.Submit()

	case "enter":
		if m.focused == FormFieldPhone {
			return m.Submit()
		}
		m.nextField()
		return m, m.focusCurrentField()
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(keyMsg)

	// Re-check live once hints are showing so they clear as the draft is fixed.
	if m.result != nil {
		result := validation.ValidateContactInput(m.Input(), m.rule)
		m.result = &result
	}

	return m, cmd
}

// Submit validates the draft. A rejected draft keeps the form open with
// inline hints and emits nothing.
func (m *ContactFormModel) Submit() (*ContactFormModel, tea.Cmd) {
	input := m.Input()
	result := validation.ValidateContactInput(input, m.rule)
	if !result.IsValid {
		m.result = &result
		return m, nil
	}

	m.reset()
	m.Hide()
	return m, func() tea.Msg { return ContactSubmittedMsg{Input: input} }
}

func (m *ContactFormModel) nextField() {
	m.focused = (m.focused + 1) % ContactFormField(len(m.inputs))
}

func (m *ContactFormModel) prevField() {
	m.focused = (m.focused + ContactFormField(len(m.inputs)) - 1) % ContactFormField(len(m.inputs))
}

func (m *ContactFormModel) focusCurrentField() tea.Cmd {
	for i := range m.inputs {
		if ContactFormField(i) != m.focused {
			m.inputs[i].Blur()
		}
	}
	return m.inputs[m.focused].Focus()
}

func (m *ContactFormModel) View() string {
	if !m.visible {
		return ""
	}

	width := 52
	if m.width > 0 && m.width-4 < width {
		width = max(m.width-4, 30)
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.Mauve)).
		Padding(1, 2).
		Width(width)

	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Mauve)).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0))

	content.WriteString(titleStyle.Render("New Contact"))
	content.WriteString("\n")
	content.WriteString(subtitleStyle.Render("Add someone new"))
	content.WriteString("\n\n")

	labels := []string{"Full Name", "Email Address", "Phone Number"}
	for i, label := range labels {
		content.WriteString(m.renderField(ContactFormField(i), label))
		content.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Overlay1))
	content.WriteString(helpStyle.Render(utils.FormatKeyHints(
		utils.KeyHint{Key: "tab", Desc: "next field"},
		utils.KeyHint{Key: "ctrl+s", Desc: "save contact"},
		utils.KeyHint{Key: "esc", Desc: "cancel"},
	)))

	return containerStyle.Render(content.String())
}

func (m *ContactFormModel) renderField(field ContactFormField, label string) string {
	labelColour := utils.Colours.Subtext1
	if field == m.focused {
		labelColour = utils.Colours.Blue
	}
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(labelColour)).
		Bold(true)

	lines := []string{labelStyle.Render(label), m.inputs[field].View()}

	if hint := m.FieldError(formFieldKeys[field]); hint != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Red))
		lines = append(lines, errorStyle.Render("✗ "+hint))
	}

	return strings.Join(lines, "\n") + "\n"
}
