// Package views provides TUI view components for the interview client.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/srinikhil9/Mock-Interview-System/internal/tui"
)

// SendChatMsg is sent when the user submits a chat message.
type SendChatMsg struct {
	Content string
}

// QuitChatMsg signals that the user wants to leave the interview.
type QuitChatMsg struct{}

// ChatModel is the view model for the interview chat screen.
type ChatModel struct {
	messages     []tui.ChatMessage
	textarea     textarea.Model
	viewport     viewport.Model
	sessionLabel string
	filesLabel   string
	isLoading    bool
	spinner      spinner.Model
	width        int
	height       int
}

// NewChatModel creates a new ChatModel. filesLabel describes the pending
// upload pair shown in the header until a session exists.
func NewChatModel(filesLabel string, width, height int) ChatModel {
	ta := textarea.New()
	ta.Placeholder = "Type your answer... (Enter to send)"
	ta.CharLimit = 5000
	ta.SetWidth(width - 8) // Account for box padding
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	// Shift+Enter (or Ctrl+J) for newline, Enter submits.
	keyMap := ta.KeyMap
	keyMap.InsertNewline = key.NewBinding(
		key.WithKeys("shift+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	ta.KeyMap = keyMap

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tui.SpinnerStyle

	vpWidth, vpHeight := chatViewportSize(width, height)
	vp := viewport.New(vpWidth, vpHeight)

	return ChatModel{
		textarea:     ta,
		viewport:     vp,
		sessionLabel: "no active session",
		filesLabel:   filesLabel,
		spinner:      sp,
		width:        width,
		height:       height,
	}
}

// chatViewportSize reserves space for header, loading line, textarea and footer.
func chatViewportSize(width, height int) (int, int) {
	vpHeight := height - 14
	if vpHeight < 5 {
		vpHeight = 5
	}
	vpWidth := width - 8
	if vpWidth < 20 {
		vpWidth = 20
	}
	return vpWidth, vpHeight
}

// SetMessages replaces the rendered transcript and scrolls to the bottom.
func (m ChatModel) SetMessages(messages []tui.ChatMessage) ChatModel {
	m.messages = messages
	m.viewport.SetContent(formatTranscript(messages))
	m.viewport.GotoBottom()
	return m
}

// SetLoading toggles the in-flight indicator and input availability.
func (m ChatModel) SetLoading(loading bool) ChatModel {
	m.isLoading = loading
	return m
}

// SetSessionLabel updates the header's session description.
func (m ChatModel) SetSessionLabel(label string) ChatModel {
	m.sessionLabel = label
	return m
}

// Loading reports whether a request is in flight.
func (m ChatModel) Loading() bool {
	return m.isLoading
}

// Init returns the initial command for the chat view.
func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update handles messages for the chat view.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		keyStr := msg.String()

		// Enter submits. An empty submission is still routed: with no
		// active session it doubles as "start the interview".
		if keyStr == tui.KeyEnter && !m.isLoading {
			content := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			m.isLoading = true
			return m, func() tea.Msg {
				return SendChatMsg{Content: content}
			}
		}

		if keyStr == tui.KeyEsc {
			return m, func() tea.Msg {
				return QuitChatMsg{}
			}
		}

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpWidth, vpHeight := chatViewportSize(msg.Width, msg.Height)
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
		m.textarea.SetWidth(vpWidth)

		m.viewport.SetContent(formatTranscript(m.messages))
		return m, nil
	}

	// Update textarea (only if not loading)
	if !m.isLoading {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update viewport for scrolling
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the chat view.
func (m ChatModel) View() string {
	var b strings.Builder

	header := tui.TitleStyle.Render("Technical Interview")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%s · %s", m.sessionLabel, m.filesLabel)))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	if m.isLoading {
		b.WriteString(fmt.Sprintf("%s Waiting for the interviewer...", m.spinner.View()))
		b.WriteString("\n\n")
		b.WriteString(tui.DimStyle.Render(m.textarea.View()))
	} else {
		b.WriteString(m.textarea.View())
	}

	b.WriteString("\n\n")
	footer := tui.DimStyle.Render("Enter: Send · Ctrl+N: New session · Ctrl+R: Retry question · Esc: Quit")
	b.WriteString(footer)

	boxed := tui.BoxStyle.
		Width(m.width - 4).
		Render(b.String())

	// Center vertically if there's space
	contentHeight := lipgloss.Height(boxed)
	if m.height > contentHeight {
		padding := (m.height - contentHeight) / 3
		if padding > 0 {
			boxed = strings.Repeat("\n", padding) + boxed
		}
	}

	return boxed
}

// formatTranscript formats the chat history for display in the viewport.
// Messages render top-to-bottom in arrival order.
func formatTranscript(messages []tui.ChatMessage) string {
	if len(messages) == 0 {
		return tui.DimStyle.Render("No messages yet.")
	}

	var b strings.Builder
	for i, msg := range messages {
		b.WriteString(senderStyle(msg.Sender).Render(msg.Sender + ": "))
		b.WriteString(msg.Text)
		if i < len(messages)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// senderStyle picks a label style for a sender. Interviewer labels carry a
// topic suffix, so match on prefix.
func senderStyle(sender string) lipgloss.Style {
	switch {
	case sender == "You":
		return tui.CandidateStyle
	case sender == "Evaluator":
		return tui.EvaluatorStyle
	case sender == "Hint":
		return tui.HintStyle
	case strings.HasPrefix(sender, "Interviewer"):
		return tui.InterviewerStyle
	default:
		return tui.DimStyle
	}
}
