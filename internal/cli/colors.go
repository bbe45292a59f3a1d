package cli

import "github.com/charmbracelet/lipgloss"

// Spectrum colour palette 🌈
// Shared with the TUI so CLI output matches the default colormap
var (
	// Core spectrum colours (cold to hot)
	SpectrumBlue   = lipgloss.Color("#3366FF") // Low intensity
	SpectrumCyan   = lipgloss.Color("#00CCFF") // Cyan
	SpectrumYellow = lipgloss.Color("#FFD700") // Yellow
	SpectrumRed    = lipgloss.Color("#E03C31") // Peak intensity

	// Accent colours
	CoolGray = lipgloss.Color("#7A8BA6") // Slate for subtle text
)
