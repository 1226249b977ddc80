// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/srinikhil9/Mock-Interview-System/internal/interview"
	"github.com/srinikhil9/Mock-Interview-System/internal/tui"
)

// SubmitCmd routes one user submission through the controller: with no
// active session it creates one, otherwise the text is submitted as an
// answer. The controller renders every outcome into the transcript itself.
func SubmitCmd(ctrl *interview.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.HandleInput(context.Background(), text)
		return tui.TurnDoneMsg{Err: err}
	}
}

// StartSessionCmd explicitly creates a new session from the pending upload
// pair, the keyboard equivalent of the original UI's "New Session" button.
func StartSessionCmd(ctrl *interview.Controller) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.StartSession(context.Background())
		return tui.TurnDoneMsg{Err: err}
	}
}

// RetryQuestionCmd re-triggers the next-question fetch after a failed one.
func RetryQuestionCmd(ctrl *interview.Controller) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.RequestNextQuestion(context.Background())
		return tui.TurnDoneMsg{Err: err}
	}
}
