package fastsearch

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(60)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	focusedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.Color("#0AF")).
				Foreground(lipgloss.Color("#FFF"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)
