package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/frontier/pkg/pipeline"
	"github.com/matzehuels/frontier/pkg/search"
)

// formatPath renders a path as "A → B → G → F", or a dash when empty.
func formatPath(path []string) string {
	if len(path) == 0 {
		return "—"
	}
	return strings.Join(path, " "+iconArrow+" ")
}

// renderTraceTable renders the full expansion trace of one run.
// The frontier column is labeled queue or stack per strategy.
func renderTraceTable(res *search.Result) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(res.Trace))
	for _, step := range res.Trace {
		rows = append(rows, []string{
			strconv.Itoa(step.Index),
			step.Expansion,
			strconv.Itoa(step.Level),
			strings.Join(step.Frontier, ", "),
			strings.Join(step.Visited, ", "),
		})
	}

	frontierHeader := fmt.Sprintf("Frontier (%s)", res.Strategy.FrontierLabel())
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Step", "Expansion", "Level", frontierHeader, "Visited").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

// renderLevelTable renders the per-node level summary of a comparison.
// BFS levels are true minimum distances; DFS levels are the depths of
// the discovery tree it happened to walk.
func renderLevelTable(cmp *pipeline.Comparison) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	nodes := map[string]bool{}
	for id := range cmp.BFS.Search.Levels {
		nodes[id] = true
	}
	for id := range cmp.DFS.Search.Levels {
		nodes[id] = true
	}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{
			id,
			levelCell(cmp.BFS.Search.Levels, id),
			levelCell(cmp.DFS.Search.Levels, id),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "BFS Level", "DFS Depth").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

func levelCell(levels map[string]int, id string) string {
	if lvl, ok := levels[id]; ok {
		return strconv.Itoa(lvl)
	}
	return "—"
}
