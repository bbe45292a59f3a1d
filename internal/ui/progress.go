package ui

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spectrum colour palette, following the default colormap
var (
	specBlue   = lipgloss.Color("#3366FF")
	specCyan   = lipgloss.Color("#00CCFF")
	specGreen  = lipgloss.Color("#33CC66")
	specYellow = lipgloss.Color("#FFD700")
	specRed    = lipgloss.Color("#E03C31")

	// Accent colours
	coolGray = lipgloss.Color("#7A8BA6")
)

// FileStarted is sent before a file is loaded
type FileStarted struct {
	Index int // 0-based position in the batch
	Total int
	Path  string
}

// FileDone is sent after a file's plot has been written
type FileDone struct {
	Index   int
	Total   int
	Path    string
	Output  string
	Shape   [2]int // rows, cols after cropping
	Max     float64
	Elapsed time.Duration
	Figure  image.Image // optional, shown as a preview
}

// BatchComplete signals the end of the batch. Err is the failure that
// stopped it, if any.
type BatchComplete struct {
	Files   int
	Elapsed time.Duration
	Err     error
}

// progressQuitMsg is sent when it's time to quit after showing completion
type progressQuitMsg struct{}

// Model is the Bubbletea model for batch file output
type Model struct {
	progressBar progress.Model

	total   int
	current FileStarted
	done    []FileDone // Figure is always nil here
	latest  image.Image
	result  *BatchComplete

	startTime time.Time

	// UI state
	width           int
	height          int
	noPreview       bool
	cachedPreview   string
	cachedIndex     int
	completionDelay time.Duration
	cancelled       bool
}

// NewModel creates a progress model for a batch of total files
func NewModel(total int, noPreview bool) *Model {
	p := progress.New(
		progress.WithGradient(string(specBlue), string(specRed)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &Model{
		progressBar:     p,
		total:           total,
		startTime:       time.Now(),
		noPreview:       noPreview,
		cachedIndex:     -1,
		completionDelay: 500 * time.Millisecond,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(min(msg.Width-30, 50), 10)
		m.cachedIndex = -1
		return m, nil

	case FileStarted:
		m.current = msg
		return m, nil

	case FileDone:
		if !m.noPreview && msg.Figure != nil {
			m.latest = msg.Figure
		}
		msg.Figure = nil
		m.done = append(m.done, msg)
		return m, nil

	case BatchComplete:
		m.result = &msg
		return m, tea.Tick(m.completionDelay, func(time.Time) tea.Msg {
			return progressQuitMsg{}
		})

	case progressQuitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.result != nil {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// Cancelled reports whether the user interrupted the batch.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Finished returns the number of files written so far.
func (m *Model) Finished() int {
	return len(m.done)
}

// View renders the UI
func (m *Model) View() string {
	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(specCyan).
		Render("Radplot")
	s.WriteString(title)
	s.WriteString("\n\n")

	percent := 0.0
	if m.total > 0 {
		percent = float64(len(m.done)) / float64(m.total)
	}
	s.WriteString("Progress: ")
	s.WriteString(m.progressBar.ViewAs(percent))
	s.WriteString(fmt.Sprintf("  %d/%d", len(m.done), m.total))
	s.WriteString("\n\n")

	elapsed := time.Since(m.startTime)
	if m.result != nil {
		elapsed = m.result.Elapsed
	}
	timing := fmt.Sprintf("Time: %s", formatDuration(elapsed))
	if n := len(m.done); n > 0 && m.result == nil && n < m.total {
		eta := time.Duration(float64(elapsed) / float64(n) * float64(m.total-n))
		timing += fmt.Sprintf("  │  ETA: %s", formatDuration(eta))
	}
	s.WriteString(lipgloss.NewStyle().Faint(true).Render(timing))
	s.WriteString("\n")

	if m.result == nil && m.current.Path != "" && len(m.done) < m.total {
		s.WriteString(lipgloss.NewStyle().Faint(true).Italic(true).Render(
			fmt.Sprintf("Plotting %s", filepath.Base(m.current.Path))))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	m.renderDone(&s)
	m.renderPreview(&s)

	if m.result != nil {
		s.WriteString("\n")
		s.WriteString(m.renderResult())
	}

	border := specBlue
	if m.result != nil && m.result.Err != nil {
		border = specRed
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Render(s.String())
}

// renderDone lists the most recent finished files
func (m *Model) renderDone(s *strings.Builder) {
	const shown = 8

	labelStyle := lipgloss.NewStyle().Foreground(coolGray)
	doneStyle := lipgloss.NewStyle().Foreground(specGreen)

	start := 0
	if len(m.done) > shown {
		start = len(m.done) - shown
		s.WriteString(labelStyle.Render(fmt.Sprintf("… %d earlier files", start)))
		s.WriteString("\n")
	}
	for _, d := range m.done[start:] {
		s.WriteString(fmt.Sprintf("%s\t %s  %s\n",
			filepath.Base(d.Path),
			doneStyle.Render("Done"),
			labelStyle.Render(fmt.Sprintf("→ %s  %dx%d  max %.3g  %s",
				d.Output, d.Shape[0], d.Shape[1], d.Max, formatDuration(d.Elapsed)))))
	}
}

func (m *Model) renderPreview(s *strings.Builder) {
	if m.noPreview || len(m.done) == 0 || m.latest == nil {
		return
	}

	if last := m.done[len(m.done)-1]; last.Index != m.cachedIndex {
		cfg := DefaultPreviewConfig()
		if m.width > 0 {
			cfg = FitPreview(m.latest.Bounds(), m.width-4, m.height, 16)
		}
		m.cachedPreview = RenderPreview(DownsampleFrame(m.latest, cfg))
		m.cachedIndex = last.Index
	}

	s.WriteString("\n")
	s.WriteString(m.cachedPreview)
}

func (m *Model) renderResult() string {
	if m.result.Err != nil {
		return lipgloss.NewStyle().Bold(true).Foreground(specRed).Render(
			fmt.Sprintf("✗ Stopped after %d of %d files: %v", len(m.done), m.total, m.result.Err))
	}
	return lipgloss.NewStyle().Bold(true).Foreground(specYellow).Render(
		fmt.Sprintf("✓ %d plots written in %s", m.result.Files, formatDuration(m.result.Elapsed)))
}

// CompletionSummary returns the final view for printing after the program
// exits, or an empty string if the batch did not complete.
func (m *Model) CompletionSummary() string {
	if m.result == nil {
		return ""
	}
	return m.View()
}

// Helper functions

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
