package ui

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewerInfo is the text shown alongside a figure in the terminal viewer.
type ViewerInfo struct {
	Title   string    // usually the input file
	Index   int       // 0-based position in the batch
	Total   int       // number of files in the batch
	Stats   string    // one line of grid statistics
	Profile []float64 // intensity summed over angle, per frequency
}

// viewerModel shows one figure until a key is pressed
type viewerModel struct {
	img  image.Image
	info ViewerInfo

	width  int
	height int
	quit   bool

	cachedPreview string
	cachedSize    [2]int
}

func newViewerModel(img image.Image, info ViewerInfo) *viewerModel {
	return &viewerModel{img: img, info: info}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var s strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(specCyan).Render(m.info.Title)
	s.WriteString(title)
	if m.info.Total > 1 {
		s.WriteString(lipgloss.NewStyle().Foreground(coolGray).Render(
			fmt.Sprintf("  (%d/%d)", m.info.Index+1, m.info.Total)))
	}
	s.WriteString("\n")

	// Title, stats, profile and hints take 7 rows.
	if size := [2]int{m.width, m.height}; m.cachedPreview == "" || size != m.cachedSize {
		cfg := DefaultPreviewConfig()
		if m.width > 0 {
			cfg = FitPreview(m.img.Bounds(), m.width, m.height, 7)
		}
		m.cachedPreview = RenderPreview(DownsampleFrame(m.img, cfg))
		m.cachedSize = size
	}
	s.WriteString(m.cachedPreview)

	if m.info.Stats != "" {
		s.WriteString(lipgloss.NewStyle().Faint(true).Render(m.info.Stats))
		s.WriteString("\n")
	}
	if len(m.info.Profile) > 0 {
		width := DefaultPreviewConfig().Width
		if m.width > 0 {
			width = max(m.width-16, 8)
		}
		s.WriteString(lipgloss.NewStyle().Foreground(coolGray).Render("ω profile "))
		s.WriteString(lipgloss.NewStyle().Foreground(specYellow).Render(renderProfile(m.info.Profile, width)))
		s.WriteString("\n")
	}

	hint := "any key: next  q: quit"
	if m.info.Index+1 >= m.info.Total {
		hint = "any key: close"
	}
	s.WriteString(lipgloss.NewStyle().Faint(true).Italic(true).Render(hint))

	return s.String()
}

// ShowTerminal displays img in the terminal until a key is pressed. It
// reports whether the user asked to stop viewing the remaining files.
func ShowTerminal(img image.Image, info ViewerInfo) (quit bool, err error) {
	m := newViewerModel(img, info)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return false, fmt.Errorf("terminal viewer: %w", err)
	}
	return m.quit, nil
}

// renderProfile draws values as a strip of block characters, sampled to
// at most width cells. Negative values draw as the lowest block.
func renderProfile(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	stride := (len(values) + width - 1) / width

	maxHeight := 0.0
	for _, v := range values {
		maxHeight = max(maxHeight, v)
	}
	if maxHeight == 0 {
		maxHeight = 1.0
	}

	var result strings.Builder
	for i := 0; i < len(values); i += stride {
		normalized := max(values[i], 0) / maxHeight
		blockIdx := min(int(normalized*float64(len(blocks)-1)), len(blocks)-1)
		result.WriteRune(blocks[blockIdx])
	}

	return result.String()
}
