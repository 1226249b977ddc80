// Package app provides the main TUI application that wires the chat view
// to the turn controller.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srinikhil9/Mock-Interview-System/internal/interview"
	"github.com/srinikhil9/Mock-Interview-System/internal/session"
	"github.com/srinikhil9/Mock-Interview-System/internal/tui"
	"github.com/srinikhil9/Mock-Interview-System/internal/tui/commands"
	"github.com/srinikhil9/Mock-Interview-System/internal/tui/views"
)

// App is the TUI application. The controller owns all protocol state; the
// app only moves transcript snapshots into the chat view and translates
// key presses into controller commands.
type App struct {
	ctrl       *interview.Controller
	registry   *session.Registry
	transcript *tui.Transcript

	chat         views.ChatModel
	width        int
	height       int
	ctrlCPending bool
}

// New creates the App and renders the welcome message.
func New(ctrl *interview.Controller, registry *session.Registry, transcript *tui.Transcript) *App {
	ctrl.Welcome()

	chat := views.NewChatModel(filesLabel(ctrl.Files()), 80, 24)
	chat = chat.SetMessages(transcript.Messages())

	return &App{
		ctrl:       ctrl,
		registry:   registry,
		transcript: transcript,
		chat:       chat,
		width:      80,
		height:     24,
	}
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return a.chat.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmd tea.Cmd
		a.chat, cmd = a.chat.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyCtrlC:
			if a.ctrlCPending {
				return a, tea.Quit
			}
			a.ctrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})

		case tui.KeyCtrlN:
			if !a.chat.Loading() {
				a.chat = a.chat.SetLoading(true)
				return a, commands.StartSessionCmd(a.ctrl)
			}
			return a, nil

		case tui.KeyCtrlR:
			if !a.chat.Loading() {
				a.chat = a.chat.SetLoading(true)
				return a, commands.RetryQuestionCmd(a.ctrl)
			}
			return a, nil
		}

	case tui.CtrlCResetMsg:
		a.ctrlCPending = false
		return a, nil

	case views.SendChatMsg:
		return a, commands.SubmitCmd(a.ctrl, msg.Content)

	case views.QuitChatMsg:
		return a, tea.Quit

	case tui.TurnDoneMsg:
		a.chat = a.refreshed().SetLoading(false)
		return a, nil

	case spinner.TickMsg:
		// Messages land in the transcript while a request is in flight;
		// piggyback on spinner ticks to keep the viewport current.
		if a.chat.Loading() {
			a.chat = a.refreshed()
		}
	}

	var cmd tea.Cmd
	a.chat, cmd = a.chat.Update(msg)
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	return a.chat.View()
}

// refreshed returns the chat view with the latest transcript and session label.
func (a *App) refreshed() views.ChatModel {
	return a.chat.SetMessages(a.transcript.Messages()).SetSessionLabel(a.sessionLabel())
}

// sessionLabel describes the sessions known to the registry; the most
// recent one is the active one.
func (a *App) sessionLabel() string {
	sessions := a.registry.List()
	if len(sessions) == 0 {
		return "no active session"
	}
	current := sessions[len(sessions)-1]
	return fmt.Sprintf("%s – %s", current.Candidate, current.Role)
}

// filesLabel summarizes the pending upload pair for the header.
func filesLabel(files interview.UploadPair) string {
	name := func(path, fallback string) string {
		if path == "" {
			return fallback
		}
		return filepath.Base(path)
	}
	return fmt.Sprintf("resume: %s · jd: %s",
		name(files.Resume, "not set"), name(files.JD, "not set"))
}
