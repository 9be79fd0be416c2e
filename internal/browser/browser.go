// Package browser is a read-only terminal viewer for finished simulation results.
package browser

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/clicker-sim/internal/clicker"
	"github.com/napolitain/clicker-sim/internal/models"
	"github.com/napolitain/clicker-sim/internal/report"
)

const (
	defaultWidth    = 80
	defaultListRows = 10
	chartHeight     = 8
	// rows used by tabs, summary, chart frame, list header and help
	chromeRows = chartHeight + 10
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the browser
type Model struct {
	results  []clicker.Result
	current  int
	offset   int
	width    int
	listRows int
}

// New creates a browser over results
func New(results []clicker.Result) Model {
	return Model{
		results:  results,
		width:    defaultWidth,
		listRows: defaultListRows,
	}
}

// Run starts the browser on the alternate screen and blocks until it quits
func Run(results []clicker.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("nothing to browse")
	}
	_, err := tea.NewProgram(New(results), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) purchases() []models.Purchase {
	if len(m.results) == 0 {
		return nil
	}
	return m.results[m.current].State.History()[1:]
}

func (m Model) maxOffset() int {
	return max(0, len(m.purchases())-m.listRows)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.listRows = max(3, msg.Height-chromeRows)
		m.offset = min(m.offset, m.maxOffset())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "tab":
			if len(m.results) > 0 {
				m.current = (m.current + 1) % len(m.results)
				m.offset = 0
			}
		case "left", "h", "shift+tab":
			if len(m.results) > 0 {
				m.current = (m.current - 1 + len(m.results)) % len(m.results)
				m.offset = 0
			}
		case "down", "j":
			m.offset = min(m.offset+1, m.maxOffset())
		case "up", "k":
			m.offset = max(m.offset-1, 0)
		case "pgdown", " ":
			m.offset = min(m.offset+m.listRows, m.maxOffset())
		case "pgup":
			m.offset = max(m.offset-m.listRows, 0)
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.results) == 0 {
		return "no results\n"
	}
	r := m.results[m.current]

	var b strings.Builder

	tabs := make([]string, len(m.results))
	for i, res := range m.results {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(res.Name)
		} else {
			tabs[i] = inactiveTabStyle.Render(res.Name)
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	b.WriteString(summaryStyle.Render(report.Summary(r.Name, r.State)))
	b.WriteString("\n")

	order, counts := report.ItemCounts(r.State.History())
	bought := make([]string, len(order))
	for i, item := range order {
		bought[i] = fmt.Sprintf("%s×%d", item, counts[item])
	}
	if len(bought) > 0 {
		b.WriteString("Bought: " + strings.Join(bought, " "))
		b.WriteString("\n")
	}

	chartWidth := max(m.width-20, 10)
	b.WriteString(report.Chart("Total resources", report.Series(r.State), chartWidth, chartHeight))
	b.WriteString("\n")

	purchases := m.purchases()
	fmt.Fprintf(&b, "Purchases %d-%d of %d\n",
		min(m.offset+1, len(purchases)), min(m.offset+m.listRows, len(purchases)), len(purchases))
	end := min(m.offset+m.listRows, len(purchases))
	for i := m.offset; i < end; i++ {
		p := purchases[i]
		fmt.Fprintf(&b, "%5d  t=%-18s %-22s cost=%-20s total=%s\n",
			i+1, report.FormatAmount(p.Time), p.Item, report.FormatAmount(p.Cost), report.FormatAmount(p.Total))
	}

	b.WriteString(helpStyle.Render("←/→ strategy • ↑/↓ scroll • q quit"))
	b.WriteString("\n")
	return b.String()
}
