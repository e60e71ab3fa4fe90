// Package cli renders dashboard view-models for terminal output.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/goldview/internal/api"
	"github.com/lox/goldview/internal/diagnostics"
)

var (
	ColorBorder = lipgloss.Color("#374151")
	ColorText   = lipgloss.Color("#F3F4F6")
	ColorMuted  = lipgloss.Color("#9CA3AF")
	ColorAmber  = lipgloss.Color("#F59E0B")
	ColorGreen  = lipgloss.Color("#22C55E")
	ColorRed    = lipgloss.Color("#EF4444")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAmber)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorMuted).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorRed)
	upStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
	downStyle   = lipgloss.NewStyle().Foreground(ColorRed)
)

// Render writes every panel of dash to w.
func Render(w io.Writer, dash *api.Dashboard) {
	var sections []string
	if dash.Overview != nil {
		sections = append(sections, renderOverview(dash.Overview))
	}
	if dash.Daily != nil {
		sections = append(sections, renderDaily(dash.Daily))
	}
	if dash.Monthly != nil {
		sections = append(sections, renderMonthly(dash.Monthly))
	}
	fmt.Fprintln(w, strings.Join(sections, "\n\n"))
}

func renderOverview(o *api.OverviewData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Gold Price Overview"))
	b.WriteString("\n")
	switch {
	case o.Failed():
		b.WriteString(errorStyle.Render("Error: " + o.Error))
	case o.Loading():
		b.WriteString(mutedStyle.Render("Loading..."))
	case !o.HasPrice:
		b.WriteString(mutedStyle.Render("No daily data available."))
	default:
		b.WriteString("Current Price (24K): " + o.Price)
		if o.HasDifference {
			b.WriteString(" " + signStyle(o.Rising).Render("("+o.Difference+")"))
		}
		b.WriteString("\n" + mutedStyle.Render("As of "+o.AsOf))
	}
	return b.String()
}

func renderDaily(d *api.DailyData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Daily Price Information"))
	b.WriteString("\n")
	if msg, done := panelStatus(d.PanelState, "daily"); done {
		return b.String() + msg
	}

	rows := make([][]string, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = []string{r.Date, r.Price}
	}
	b.WriteString(newTable([]string{"Date", "Price (₹/gram)"}, rows, "No daily data available."))

	if len(d.Forecast) > 0 {
		fc := make([][]string, len(d.Forecast))
		for i, c := range d.Forecast {
			fc[i] = []string{c.Label, c.Price, c.Change, c.Cumulative}
		}
		b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Daily Forecast (Next %d Days)", len(d.Forecast))) + "\n")
		b.WriteString(newTable([]string{"Date", "Price", "Change", "Since last close"}, fc, ""))
	}
	b.WriteString("\n" + renderModel("Model Details (Based on Daily Data)", d.Model))
	return b.String()
}

func renderMonthly(m *api.MonthlyData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Monthly Price Information and Forecast"))
	b.WriteString("\n")
	if msg, done := panelStatus(m.PanelState, "monthly"); done {
		return b.String() + msg
	}

	rows := make([][]string, len(m.Rows))
	for i, r := range m.Rows {
		rows[i] = []string{r.Month, r.Average, r.Start, r.End, r.Change, r.Percent}
	}
	b.WriteString(newTable([]string{"Month", "Average", "Start", "End", "Change (Rs)", "% Change"}, rows, "No monthly data available."))

	b.WriteString("\n" + titleStyle.Render("Monthly Forecast (Next 3 Months)") + "\n")
	if len(m.Forecast) == 0 {
		b.WriteString(mutedStyle.Render("No forecast data available."))
	} else {
		fc := make([][]string, len(m.Forecast))
		for i, c := range m.Forecast {
			fc[i] = []string{c.Label, c.Price}
		}
		b.WriteString(newTable([]string{"Month", "Price"}, fc, ""))
	}
	b.WriteString("\n" + renderModel("Model Details (Based on Monthly Data)", m.Model))
	return b.String()
}

func panelStatus(st api.PanelState, name string) (string, bool) {
	switch {
	case st.Failed():
		return errorStyle.Render(fmt.Sprintf("Error loading %s data: %s", name, st.Error)), true
	case st.Loading():
		return mutedStyle.Render("Loading..."), true
	}
	return "", false
}

func renderModel(title string, rows []diagnostics.Row) string {
	headers := make([]string, len(rows))
	values := make([]string, len(rows))
	for i, r := range rows {
		headers[i] = r.Label
		values[i] = r.Value
	}
	return mutedStyle.Render(title) + "\n" + newTable(headers, [][]string{values}, "")
}

func newTable(headers []string, rows [][]string, empty string) string {
	if len(rows) == 0 && empty != "" {
		return mutedStyle.Render(empty)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func signStyle(rising bool) lipgloss.Style {
	if rising {
		return upStyle
	}
	return downStyle
}
