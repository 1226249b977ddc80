package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the chat palette.
const (
	primaryColor   = "#7C3AED" // Purple - interviewer
	secondaryColor = "#10B981" // Green - candidate
	warningColor   = "#F59E0B" // Amber - evaluator
	hintColor      = "#06B6D4" // Cyan - hints
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray - system
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// InterviewerStyle labels interviewer messages.
	InterviewerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(primaryColor)).
				Bold(true)

	// CandidateStyle labels the candidate's own messages.
	CandidateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor)).
			Bold(true)

	// EvaluatorStyle labels evaluation feedback.
	EvaluatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor)).
			Bold(true)

	// HintStyle labels hint messages.
	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hintColor)).
			Bold(true)

	// SpinnerStyle colors the thinking spinner.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor))
)
