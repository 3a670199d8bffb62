// internal/tui/browser.go
// Package tui provides an interactive terminal browser for computed metric tables.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/dief/internal/report"
	"github.com/mwiater/dief/internal/util"
)

const (
	defaultHeight = 15
	// maxColumnWidth caps a column so long test or approach names stay on one screen.
	maxColumnWidth = 32
	// chromeHeight is the number of lines used by the title, tabs and footer.
	chromeHeight = 6
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	activeTabStyle = lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	frameStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// Browser is a bubbletea model that shows one report.Table at a time.
type Browser struct {
	tables []report.Table
	active int
	table  table.Model
}

// NewBrowser returns a Browser showing the first of tables.
func NewBrowser(tables []report.Table) *Browser {
	t := table.New(table.WithFocused(true), table.WithHeight(defaultHeight))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("86")).
		Bold(false)
	t.SetStyles(styles)

	b := &Browser{tables: tables, table: t}
	b.show(0)
	return b
}

// Active returns the index of the table on screen.
func (b *Browser) Active() int {
	return b.active
}

// show switches the table model to tables[i].
func (b *Browser) show(i int) {
	if len(b.tables) == 0 {
		return
	}
	b.active = (i%len(b.tables) + len(b.tables)) % len(b.tables)
	current := b.tables[b.active]
	rows := current.Strings()

	columns := make([]table.Column, len(current.Columns))
	for c, name := range current.Columns {
		cells := make([]string, 0, len(rows))
		for _, row := range rows {
			if c < len(row) {
				cells = append(cells, row[c])
			}
		}
		columns[c] = table.Column{Title: name, Width: util.ColumnWidth(name, cells, maxColumnWidth) + 1}
	}

	tableRows := make([]table.Row, len(rows))
	for r, row := range rows {
		fitted := make(table.Row, len(row))
		for c, cell := range row {
			fitted[c] = util.TruncateRunes(cell, maxColumnWidth)
		}
		tableRows[r] = fitted
	}

	// Rows are cleared first so they never render against a narrower column set.
	b.table.SetRows(nil)
	b.table.SetColumns(columns)
	b.table.SetRows(tableRows)
	b.table.SetCursor(0)
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - chromeHeight; h > 3 {
			b.table.SetHeight(h)
		}
		return b, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "tab", "right":
			b.show(b.active + 1)
			return b, nil
		case "shift+tab", "left":
			b.show(b.active - 1)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b *Browser) View() string {
	if len(b.tables) == 0 {
		return "No tables to show. Press q to quit.\n"
	}

	var tabs []string
	for i, t := range b.tables {
		style := tabStyle
		if i == b.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.Title))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("dief results"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n")
	sb.WriteString(frameStyle.Render(b.table.View()))
	sb.WriteString("\n")
	sb.WriteString(footerStyle.Render(fmt.Sprintf("%d rows • tab/shift+tab switch table • ↑/↓ scroll • q quit", len(b.tables[b.active].Rows))))
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(tables []report.Table) error {
	p := tea.NewProgram(NewBrowser(tables), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
