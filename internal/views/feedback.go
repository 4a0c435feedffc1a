package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rhystmorgan/veContacts/internal/utils"
)

type FeedbackMessage struct {
	Type     FeedbackType
	Message  string
	Duration time.Duration
	ShowTime time.Time
}

type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
	FeedbackWarning FeedbackType = "warning"
	FeedbackInfo    FeedbackType = "info"
)

// FeedbackTimeoutMsg clears the feedback it was scheduled for. ShowTime
// identifies the message so an older timeout cannot clear a newer one.
type FeedbackTimeoutMsg struct {
	ShowTime time.Time
}

func newFeedback(feedbackType FeedbackType, message string, duration time.Duration) (*FeedbackMessage, tea.Cmd) {
	feedback := &FeedbackMessage{
		Type:     feedbackType,
		Message:  message,
		Duration: duration,
		ShowTime: time.Now(),
	}
	shown := feedback.ShowTime
	return feedback, tea.Tick(duration, func(time.Time) tea.Msg {
		return FeedbackTimeoutMsg{ShowTime: shown}
	})
}

func renderFeedbackMessage(feedback *FeedbackMessage) string {
	if feedback == nil {
		return ""
	}

	var color string
	switch feedback.Type {
	case FeedbackSuccess:
		color = utils.Colours.Green
	case FeedbackError:
		color = utils.Colours.Red
	case FeedbackWarning:
		color = utils.Colours.Yellow
	case FeedbackInfo:
		color = utils.Colours.Blue
	default:
		color = utils.Colours.Text
	}

	feedbackStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Background(lipgloss.Color(utils.Colours.Surface0)).
		Padding(0, 1).
		Bold(true)

	return feedbackStyle.Render(feedback.Message)
}
