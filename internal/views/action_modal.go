package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/simulator"
	"rhystmorgan/veContacts/internal/utils"
)

// CallTickMsg advances the session timer. Ticks whose generation no longer
// matches the simulator are dropped and not rescheduled.
type CallTickMsg struct {
	Generation uint64
}

// ModalClosedMsg ends the closing frame and hands control back to the list.
type ModalClosedMsg struct {
	Generation uint64
}

type ActionModalModel struct {
	sim        *simulator.Simulator
	closeDelay time.Duration
	compose    textarea.Model

	// What is drawn. These outlive the simulator session by closeDelay.
	contact models.Contact
	kind    simulator.Kind
	closing bool

	width  int
	height int
}

func NewActionModalModel(sim *simulator.Simulator, closeDelay time.Duration) *ActionModalModel {
	compose := textarea.New()
	compose.Placeholder = "Type message..."
	compose.ShowLineNumbers = false
	compose.CharLimit = 500
	compose.SetHeight(3)
	compose.SetWidth(40)

	return &ActionModalModel{
		sim:        sim,
		closeDelay: closeDelay,
		compose:    compose,
	}
}

func (m *ActionModalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.compose.SetWidth(min(max(m.boxWidth()-8, 20), 60))
}

// Open starts a session for contact and returns the command that drives it.
func (m *ActionModalModel) Open(contact models.Contact, kind simulator.Kind) tea.Cmd {
	gen := m.sim.Open(contact, kind)

	m.contact = contact
	m.kind = kind
	m.closing = false
	m.compose.Reset()
	m.compose.Blur()

	switch {
	case kind == simulator.KindMessage:
		return m.compose.Focus()
	case kind.Timed():
		return tickEverySecond(gen)
	}
	return nil
}

func tickEverySecond(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CallTickMsg{Generation: gen}
	})
}

// Close ends the session and starts the closing frame.
func (m *ActionModalModel) Close() tea.Cmd {
	return m.end(func() { m.sim.Close() })
}

// Send is the message session's primary action. The text goes nowhere.
func (m *ActionModalModel) Send() tea.Cmd {
	return m.end(func() { m.sim.SendMessage(m.compose.Value()) })
}

func (m *ActionModalModel) end(stop func()) tea.Cmd {
	if m.closing || !m.sim.Active() {
		return nil
	}

	stop()
	m.compose.Blur()
	m.closing = true

	gen := m.sim.Generation()
	if m.closeDelay <= 0 {
		return func() tea.Msg { return ModalClosedMsg{Generation: gen} }
	}
	return tea.Tick(m.closeDelay, func(time.Time) tea.Msg {
		return ModalClosedMsg{Generation: gen}
	})
}

// Shutdown closes the session without a closing frame, stopping the player.
func (m *ActionModalModel) Shutdown() {
	m.sim.Close()
	m.closing = false
}

// Finished reports whether msg ends the current closing frame.
func (m *ActionModalModel) Finished(msg ModalClosedMsg) bool {
	return m.closing && msg.Generation == m.sim.Generation()
}

func (m *ActionModalModel) Closing() bool {
	return m.closing
}

func (m *ActionModalModel) Update(msg tea.Msg) (*ActionModalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case CallTickMsg:
		if m.sim.Tick(msg.Generation) {
			return m, tickEverySecond(msg.Generation)
		}
		return m, nil

	case tea.KeyMsg:
		if m.closing {
			return m, nil
		}
		if m.kind == simulator.KindMessage {
			return m.updateMessage(msg)
		}
		return m.updateCall(msg)
	}

	if m.kind == simulator.KindMessage && !m.closing {
		var cmd tea.Cmd
		m.compose, cmd = m.compose.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ActionModalModel) updateCall(msg tea.KeyMsg) (*ActionModalModel, tea.Cmd) {
	switch msg.String() {
	case "m":
		m.sim.ToggleMute()
	case "v":
		m.sim.ToggleVideo()
	case "e", "enter", "esc", "x":
		return m, m.Close()
	}
	return m, nil
}

func (m *ActionModalModel) updateMessage(msg tea.KeyMsg) (*ActionModalModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m, m.Send()
	case "esc":
		return m, m.Close()
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m *ActionModalModel) boxWidth() int {
	if m.width <= 0 {
		return 48
	}
	return min(max(m.width-8, 30), 56)
}

func (m *ActionModalModel) View() string {
	width := m.boxWidth()

	accent := utils.Colours.Green
	if m.kind == simulator.KindMessage {
		accent = utils.Colours.Blue
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Background(lipgloss.Color(utils.Colours.Crust)).
		Padding(1, 2).
		Width(width)

	if m.closing {
		boxStyle = boxStyle.BorderForeground(lipgloss.Color(utils.Colours.Surface2))
	}

	center := lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center)

	sections := []string{
		m.renderHeader(accent),
		"",
		center.Render(m.renderAvatar()),
		center.Render(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(utils.Colours.Text)).
			Render(utils.TruncateString(m.contact.Name, width-6))),
		center.Render(m.renderStatusLine()),
	}

	switch m.kind {
	case simulator.KindVideo:
		sections = append(sections, "", center.Render(m.renderVideoFeed(width-8)))
	case simulator.KindMessage:
		sections = append(sections, "", m.renderConversation(width-4), m.compose.View())
	}

	sections = append(sections, "", center.Render(m.renderControls()))

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(utils.Colours.Crust)))
}

func (m *ActionModalModel) renderHeader(accent string) string {
	title := m.kind.Title() + "..."
	if m.closing {
		title = "Ended"
		accent = utils.Colours.Overlay1
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Bold(true).
		Render("● " + title)
}

func (m *ActionModalModel) renderAvatar() string {
	initials, style := avatar(m.contact.Name)
	return style.Padding(1, 3).Render(initials)
}

func (m *ActionModalModel) renderStatusLine() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Subtext0))

	if m.kind == simulator.KindMessage {
		return style.Render(m.contact.ContactMethod())
	}

	status := m.sim.Display()
	if m.sim.Muted() {
		status += "  🔇 muted"
	}
	return style.Render(status)
}

func (m *ActionModalModel) renderVideoFeed(width int) string {
	label := "Simulated Video Feed"
	if m.sim.VideoOff() {
		label = "Video off"
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.Surface1)).
		Foreground(lipgloss.Color(utils.Colours.Overlay0)).
		Italic(true).
		Width(max(width, 10)).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

func (m *ActionModalModel) renderConversation(width int) string {
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Overlay1)).
		Italic(true).
		Render("Simulated message history...")

	sent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Base)).
		Background(lipgloss.Color(utils.Colours.Blue)).
		Padding(0, 1).
		Render("Hey!")

	received := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Background(lipgloss.Color(utils.Colours.Surface1)).
		Padding(0, 1).
		Render("Hi there!")

	right := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)
	return strings.Join([]string{hint, right.Render(sent), received}, "\n")
}

func (m *ActionModalModel) renderControls() string {
	button := func(label, colour string, active bool) string {
		style := lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(utils.Colours.Text)).
			Background(lipgloss.Color(utils.Colours.Surface0))
		if active {
			style = style.Background(lipgloss.Color(utils.Colours.Surface2))
		}
		if colour != "" {
			style = style.
				Foreground(lipgloss.Color(utils.Colours.Base)).
				Background(lipgloss.Color(colour))
		}
		return style.Render(label)
	}

	switch m.kind {
	case simulator.KindCall, simulator.KindVideo:
		muteLabel := "[m] Mute"
		if m.sim.Muted() {
			muteLabel = "[m] Unmute"
		}
		toggles := []string{button(muteLabel, "", m.sim.Muted())}

		if m.kind == simulator.KindVideo {
			videoLabel := "[v] Stop Video"
			if m.sim.VideoOff() {
				videoLabel = "[v] Start Video"
			}
			toggles = append(toggles, button(videoLabel, "", m.sim.VideoOff()))
		}

		return strings.Join(toggles, " ") + "\n\n" + button("[e] "+m.kind.EndLabel(), utils.Colours.Red, false)

	case simulator.KindMessage:
		return button("[ctrl+s] "+m.kind.EndLabel(), utils.Colours.Blue, false) + " " + button("[esc] Close", "", false)
	}

	return ""
}
