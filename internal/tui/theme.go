package tui

import "github.com/charmbracelet/lipgloss"

// Ayu theme colors for TUI contexts.
var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorDim  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorText = lipgloss.AdaptiveColor{Light: "#5c6166", Dark: "#bfbdb6"}
	colorSel  = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#1a1f29"}
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)

	styleSelected = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorText)

	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleEnvProd = lipgloss.NewStyle().Foreground(colorPass).Bold(true)

	styleBar = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorDim).
			Padding(0, 1)
)

func colorizeEnv(env string) string {
	if env == "prod" {
		return styleEnvProd.Render(env)
	}
	return styleDim.Render(env)
}
