package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/fogbyte/vbafog/internal/model"
)

var (
	tuiHeaderStyle = lipgloss.NewStyle().Bold(true)
	tuiDimStyle    = lipgloss.NewStyle().Faint(true)
	tuiAccentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySummary shows per-file results, scrolling when they do not fit.
func (t *TUI) DisplaySummary(summaries []FileSummary) error {
	rows := make([]string, 0, len(summaries)+1)
	rows = append(rows, tuiHeaderStyle.Render("Obfuscated files"))

	for _, summary := range summaries {
		rows = append(rows, fmt.Sprintf("%s %s %s",
			tuiAccentStyle.Render(string(summary.Origin)),
			tuiDimStyle.Render("->"),
			string(summary.Output)))
		rows = append(rows, tuiDimStyle.Render(fmt.Sprintf(
			"  %d methods, %d renames, %d mutated strings",
			summary.Methods, summary.Renames, summary.MutatedLiterals)))
	}

	return t.show(rows)
}

// DisplayInspection shows the per-method listing.
func (t *TUI) DisplayInspection(rows []InspectionRow) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, tuiHeaderStyle.Render("Scanned methods"))

	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			tuiAccentStyle.Render(row.Method),
			tuiDimStyle.Render(row.Kind),
			tuiDimStyle.Render(string(row.Origin))))
		lines = append(lines, tuiDimStyle.Render(fmt.Sprintf(
			"  %d params, %d vars, %d strings", row.Params, row.Vars, row.Literals)))
	}

	return t.show(lines)
}

// DisplayAudits shows saved change records.
func (t *TUI) DisplayAudits(audits []m.Audit) error {
	var lines []string

	for _, audit := range audits {
		lines = append(lines, tuiHeaderStyle.Render(
			fmt.Sprintf("%s -> %s", audit.Origin, audit.Output)))

		for _, rec := range audit.Renames {
			lines = append(lines, fmt.Sprintf("  [%d] %s %s %s %s",
				rec.Line,
				tuiDimStyle.Render(string(rec.Class)),
				rec.OldName,
				tuiDimStyle.Render("->"),
				tuiAccentStyle.Render(rec.NewName)))
		}

		for _, rec := range audit.Mutations {
			lines = append(lines, fmt.Sprintf("  [%d] %s %s %s %s",
				rec.Line,
				tuiDimStyle.Render(rec.Strategy),
				rec.Original,
				tuiDimStyle.Render("->"),
				tuiAccentStyle.Render(rec.Replacement)))
		}
	}

	return t.show(lines)
}

// show prints the rows directly when they fit the terminal, and runs a
// scrollable Bubble Tea program otherwise.
func (t *TUI) show(rows []string) error {
	model := newScrollModel(rows)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// scrollModel is a minimal scrollable list of pre-rendered rows.
type scrollModel struct {
	rows   []string
	width  int
	height int
	offset int
}

func newScrollModel(rows []string) scrollModel {
	return scrollModel{rows: rows, width: 80, height: 24}
}

func (sm scrollModel) needsPagination() bool {
	return len(sm.rows) >= sm.height
}

// Init implements tea.Model.
func (sm scrollModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (sm scrollModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return sm, tea.Quit
		case "up", "k":
			if sm.offset > 0 {
				sm.offset--
			}
		case "down", "j":
			if sm.offset < len(sm.rows)-sm.visibleRows() {
				sm.offset++
			}
		}
	}

	return sm, nil
}

func (sm scrollModel) visibleRows() int {
	// One row is reserved for the help line.
	visible := sm.height - 1
	if visible < 1 {
		visible = 1
	}

	return visible
}

// View implements tea.Model.
func (sm scrollModel) View() string {
	var sb strings.Builder

	end := sm.offset + sm.visibleRows()
	if end > len(sm.rows) {
		end = len(sm.rows)
	}

	for _, row := range sm.rows[sm.offset:end] {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	if sm.needsPagination() {
		sb.WriteString(tuiDimStyle.Render("j/k scroll, q quit"))
		sb.WriteByte('\n')
	}

	return sb.String()
}
