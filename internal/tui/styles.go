package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	labelStyle      = lipgloss.NewStyle().Bold(true)
	userStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	botStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	pendingStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	noticeStyle     = lipgloss.NewStyle().Faint(true)
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// status colours follow the upload lifecycle: orange while busy, green on
// success, red on failure.
var statusStyles = map[statusKind]lipgloss.Style{
	statusNone:    lipgloss.NewStyle(),
	statusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")),
	statusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#00AF00")),
	statusError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")),
}
