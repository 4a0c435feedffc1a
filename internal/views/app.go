package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"rhystmorgan/veContacts/internal/contacts"
	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/simulator"
	"rhystmorgan/veContacts/internal/utils"
	"rhystmorgan/veContacts/internal/validation"
)

type ViewState int

const (
	ViewLoading ViewState = iota
	ViewList
	ViewForm
	ViewModal
)

const feedbackDuration = 3 * time.Second

type Options struct {
	// LoadDelay holds the loading screen before the first list render.
	LoadDelay time.Duration

	// CloseDelay keeps the closing contact on screen after a session ends.
	CloseDelay time.Duration

	Rule validation.Rule
}

type AppModel struct {
	state  ViewState
	width  int
	height int

	store  *contacts.Store
	sim    *simulator.Simulator
	logger *zap.Logger
	opts   Options

	spinner spinner.Model
	list    *ContactListModel
	form    *ContactFormModel
	modal   *ActionModalModel

	feedback *FeedbackMessage
}

type ContactsLoadedMsg struct {
	Contacts []models.Contact
}

func NewAppModel(store *contacts.Store, sim *simulator.Simulator, logger *zap.Logger, opts Options) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Rule == "" {
		opts.Rule = validation.RuleNameAndEmailOrPhone
	}

	loading := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Mauve))),
	)

	return &AppModel{
		state:   ViewLoading,
		store:   store,
		sim:     sim,
		logger:  logger.Named("app"),
		opts:    opts,
		spinner: loading,
		list:    NewContactListModel(),
		form:    NewContactFormModel(opts.Rule),
		modal:   NewActionModalModel(sim, opts.CloseDelay),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadContacts())
}

func (m AppModel) loadContacts() tea.Cmd {
	store := m.store
	load := func() tea.Msg {
		return ContactsLoadedMsg{Contacts: store.Load()}
	}

	if m.opts.LoadDelay <= 0 {
		return load
	}
	return tea.Tick(m.opts.LoadDelay, func(time.Time) tea.Msg {
		return load()
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.form.SetWidth(msg.Width)
		m.modal.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "q":
			if m.state == ViewList && !m.list.SearchFocused() {
				return m.quit()
			}
		}

	case spinner.TickMsg:
		if m.state != ViewLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ContactsLoadedMsg:
		m.list.SetContacts(msg.Contacts)
		m.state = ViewList
		return m, nil

	case ShowFormMsg:
		m.state = ViewForm
		return m, m.form.Show()

	case FormCancelledMsg:
		m.state = ViewList
		return m, nil

	case ContactSubmittedMsg:
		contact := m.store.Add(msg.Input)
		m.list.SetContacts(m.store.All())
		m.state = ViewList
		m.feedback, cmd = newFeedback(FeedbackSuccess, fmt.Sprintf("Added %s", contact.Name), feedbackDuration)
		return m, cmd

	case OpenActionMsg:
		m.logger.Debug("Opening action",
			zap.String("kind", msg.Kind.String()),
			zap.String("contact_id", msg.Contact.ID))
		m.state = ViewModal
		return m, m.modal.Open(msg.Contact, msg.Kind)

	case CallTickMsg:
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd

	case ModalClosedMsg:
		if m.state == ViewModal && m.modal.Finished(msg) {
			m.state = ViewList
		}
		return m, nil

	case FeedbackTimeoutMsg:
		if m.feedback != nil && m.feedback.ShowTime.Equal(msg.ShowTime) {
			m.feedback = nil
		}
		return m, nil
	}

	switch m.state {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	case ViewModal:
		m.modal, cmd = m.modal.Update(msg)
	}

	return m, cmd
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

// Shutdown ends any open session so no tick or player goroutine outlives
// the program.
func (m AppModel) Shutdown() {
	if m.sim.Active() {
		m.logger.Debug("Closing open session on quit", zap.String("kind", m.sim.Kind().String()))
		m.modal.Shutdown()
	}
}

func (m AppModel) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var content string

	switch m.state {
	case ViewLoading:
		loadingStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Subtext0)).
			Padding(2, 2)
		content = loadingStyle.Render(m.spinner.View() + " Loading contacts...")
	case ViewList:
		content = m.list.View()
		if m.feedback != nil {
			content += "\n" + renderFeedbackMessage(m.feedback)
		}
	case ViewForm:
		content = lipgloss.PlaceHorizontal(width, lipgloss.Center, m.form.View())
	case ViewModal:
		return m.modal.View()
	default:
		content = "Unknown view"
	}

	if m.width == 0 || m.height == 0 {
		return content
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m AppModel) State() ViewState                { return m.state }
func (m AppModel) List() *ContactListModel         { return m.list }
func (m AppModel) Form() *ContactFormModel         { return m.form }
func (m AppModel) Modal() *ActionModalModel        { return m.modal }
func (m AppModel) Feedback() *FeedbackMessage      { return m.feedback }
func (m AppModel) Simulator() *simulator.Simulator { return m.sim }
