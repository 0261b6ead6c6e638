package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/frontier/pkg/search"
)

var (
	stepCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stepDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// TraceModel is the bubbletea model for stepping through an expansion
// trace one step at a time. Arrow keys move between steps; the view
// shows the trace rows up to the cursor so the frontier and visited
// sets grow as the user advances.
type TraceModel struct {
	Result *search.Result
	Cursor int
}

// newTraceModel creates a trace viewer positioned at the first step.
func newTraceModel(res *search.Result) TraceModel {
	return TraceModel{Result: res}
}

func (m TraceModel) Init() tea.Cmd {
	return nil
}

func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "k", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "j", "l", " ", "enter":
			if m.Cursor < len(m.Result.Trace)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Result.Trace) - 1
		}
	}
	return m, nil
}

func (m TraceModel) View() string {
	var b strings.Builder

	res := m.Result
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s: %s %s %s",
		strategyName(res.Strategy), res.Start, iconArrow, res.Goal)))
	b.WriteString("\n")
	b.WriteString(stepDimStyle.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	frontierHeader := fmt.Sprintf("Frontier (%s)", res.Strategy.FrontierLabel())

	rows := make([][]string, 0, m.Cursor+1)
	for _, step := range res.Trace[:m.Cursor+1] {
		rows = append(rows, []string{
			fmt.Sprintf("%d", step.Index),
			step.Expansion,
			fmt.Sprintf("%d", step.Level),
			strings.Join(step.Frontier, ", "),
			strings.Join(step.Visited, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Step", "Expansion", "Level", frontierHeader, "Visited").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return stepCurrentStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	step := res.Trace[m.Cursor]
	if step.Expansion == search.StartMarker {
		b.WriteString(stepDimStyle.Render(fmt.Sprintf("  initial frontier holds %s", res.Start)))
	} else {
		b.WriteString(stepDimStyle.Render(fmt.Sprintf("  expanded %s at level %d", step.Expansion, step.Level)))
	}
	b.WriteString("\n")

	if m.Cursor == len(res.Trace)-1 {
		b.WriteString("\n")
		if res.Found() {
			b.WriteString(StyleSuccess.Render(fmt.Sprintf("  %s path: %s", iconSuccess, formatPath(res.Path))))
		} else {
			b.WriteString(stepDimStyle.Render(fmt.Sprintf("  %s goal %s unreachable from %s", iconError, res.Goal, res.Start)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(stepDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(res.Trace))))

	return b.String()
}
