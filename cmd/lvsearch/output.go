package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvsearch/internal/runner"
)

// frontierPreview is how many frontier states a text trace line shows.
const frontierPreview = 6

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")
)

// styles are bound to the output writer's renderer so that files and pipes
// get plain text.
type styles struct {
	label, found, failed, muted, header lipgloss.Style
}

func (a *app) styles() styles {
	r := lipgloss.NewRenderer(a.out)

	return styles{
		label:  r.NewStyle().Bold(true).Width(10),
		found:  r.NewStyle().Foreground(colorAccent).Bold(true),
		failed: r.NewStyle().Foreground(colorError),
		muted:  r.NewStyle().Foreground(colorMuted),
		header: r.NewStyle().Bold(true).Padding(0, 1),
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (a *app) printReport(r *runner.Report, asJSON bool) error {
	if asJSON {
		return a.printJSON(r)
	}
	st := a.styles()
	status := st.failed.Render(r.Status)
	if r.Found {
		status = st.found.Render(r.Status)
	}
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", st.label.Render(label), value)
	}
	line("run", st.muted.Render(r.RunID))
	line("problem", fmt.Sprintf("%s (%s)", r.Kind, r.Algorithm))
	line("status", status)
	if r.Found {
		line("path", fmt.Sprintf("%d states, cost %s", r.PathLength, formatCost(r.PathCost)))
	}
	line("explored", fmt.Sprintf("%d (pushed %d, stale %d, max frontier %d)",
		r.NodesExplored, r.Pushed, r.StalePops, r.MaxFrontier))
	line("elapsed", r.Elapsed.String())
	if r.Error != "" {
		line("error", st.failed.Render(r.Error))
	}
	for i, s := range r.Path {
		fmt.Fprintf(&b, "%4d  %s\n", i, s)
	}
	_, err := fmt.Fprint(a.out, b.String())

	return err
}

func (a *app) printSnapshot(s runner.Snapshot, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "%s\n", data)
		return err
	}
	preview := s.Frontier
	more := ""
	if len(preview) > frontierPreview {
		more = fmt.Sprintf(" …+%d", len(preview)-frontierPreview)
		preview = preview[:frontierPreview]
	}
	_, err := fmt.Fprintf(a.out, "step %-4d expand %-12s closed=%-5d stale=%-3d frontier=%d [%s%s] %s\n",
		s.Step, s.Expanded, s.Closed, s.Stale, len(s.Frontier), strings.Join(preview, " | "), more, s.Status)

	return err
}

func (a *app) printTable(reports []*runner.Report, asJSON bool) error {
	if asJSON {
		return a.printJSON(reports)
	}
	st := a.styles()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.muted).
		Headers("ALGORITHM", "STATUS", "LENGTH", "COST", "EXPLORED", "PUSHED", "STALE", "MAX FRONTIER", "ELAPSED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range reports {
		cost := "-"
		if r.Found {
			cost = formatCost(r.PathCost)
		}
		t.Row(r.Algorithm, r.Status,
			strconv.Itoa(r.PathLength), cost,
			strconv.Itoa(r.NodesExplored), strconv.Itoa(r.Pushed),
			strconv.Itoa(r.StalePops), strconv.Itoa(r.MaxFrontier),
			r.Elapsed.String())
	}
	_, err := fmt.Fprintln(a.out, t.Render())

	return err
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
