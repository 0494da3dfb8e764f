package style

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#0EA5E9")
	Green   = lipgloss.Color("#10B981")
	Red     = lipgloss.Color("#EF4444")
	Yellow  = lipgloss.Color("#F59E0B")
	Dim     = lipgloss.Color("#6B7280")
	White   = lipgloss.Color("#F9FAFB")

	// Text styles
	Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(Dim).
		Italic(true)

	Bold = lipgloss.NewStyle().Bold(true).Foreground(White)

	Healthy   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Unhealthy = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Warning   = lipgloss.NewStyle().Foreground(Yellow)

	DimText = lipgloss.NewStyle().Foreground(Dim)

	// Status indicators
	DotHealthy   = Healthy.Render("●")
	DotUnhealthy = Unhealthy.Render("●")
	DotWarning   = Warning.Render("●")
	DotDim       = DimText.Render("●")

	// Picker
	Cursor   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Selected = lipgloss.NewStyle().Foreground(Green)

	// Table
	TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Dim).
		PaddingRight(2)

	// Error box
	ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Red).
		Foreground(Red).
		Padding(0, 1).
		MarginTop(1)

	// Key-value
	Key = lipgloss.NewStyle().Foreground(Dim).Width(14)
	Val = lipgloss.NewStyle().Foreground(White)
)

// PhaseDot maps a pod phase onto a status dot.
func PhaseDot(phase string) string {
	switch phase {
	case "Running":
		return DotHealthy
	case "Pending":
		return DotWarning
	case "Failed":
		return DotUnhealthy
	case "Succeeded":
		return DotDim
	default:
		return DotDim
	}
}

// AliveDot marks a tracked session as live or gone.
func AliveDot(alive bool) string {
	if alive {
		return DotHealthy
	}
	return DotDim
}
