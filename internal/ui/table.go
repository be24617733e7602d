package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CheckRow is one service in the check result table.
type CheckRow struct {
	Service    string
	URL        string
	Healthy    bool
	StatusCode int    // 0 when no response arrived
	Latency    string // "42ms" or "N/A"
	Detail     string // failure reason, empty when healthy
}

// RenderCheckTable renders health check results as a bordered table.
func RenderCheckTable(rows []CheckRow) string {
	if len(rows) == 0 {
		return "No services configured"
	}

	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("", "SERVICE", "STATUS", "CODE", "LATENCY", "DETAIL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		icon := successStyle.Render(SymbolComplete)
		status := successStyle.Render("healthy")
		if !r.Healthy {
			icon = errorStyle.Render(SymbolFail)
			status = errorStyle.Render("unhealthy")
		}

		code := "-"
		if r.StatusCode != 0 {
			code = strconv.Itoa(r.StatusCode)
		}

		t.Row(icon, r.Service, status, code, mutedStyle.Render(r.Latency), r.Detail)
	}

	return t.Render()
}
