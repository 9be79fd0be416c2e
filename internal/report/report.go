// Package report renders finished simulations: one-line summaries, comparison
// and history tables, and a text chart of cumulative resources over time.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/clicker-sim/internal/clicker"
	"github.com/napolitain/clicker-sim/internal/models"
)

// Summary returns "<name>: <state>"
func Summary(name string, state *clicker.State) string {
	return fmt.Sprintf("%s: %s", name, state)
}

// FormatAmount renders a resource amount with thousands separators
func FormatAmount(v float64) string {
	return humanize.CommafWithDigits(v, 1)
}

// ComparisonTable writes one row per result, marking the highest total
func ComparisonTable(w io.Writer, results []clicker.Result) error {
	best := clicker.BestResult(results)

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Strategy", "Duration", "Purchases", "Rate", "Resources", "Total", "Best"}),
	)

	for i, r := range results {
		marker := ""
		if i == best {
			marker = "✓"
		}
		row := []string{
			strconv.Itoa(i + 1),
			r.Name,
			FormatAmount(r.Duration),
			strconv.Itoa(r.State.Purchases()),
			FormatAmount(r.State.Rate()),
			FormatAmount(r.State.Resources()),
			FormatAmount(r.State.Total()),
			marker,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row %d: %w", i+1, err)
		}
	}

	return table.Render()
}

// HistoryTable writes every purchase of a run; the initial record is skipped
func HistoryTable(w io.Writer, history []models.Purchase) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Time", "Item", "Cost", "Total"}),
	)

	n := 0
	for _, p := range history {
		if p.IsInitial() {
			continue
		}
		n++
		row := []string{
			strconv.Itoa(n),
			FormatAmount(p.Time),
			p.Item,
			FormatAmount(p.Cost),
			FormatAmount(p.Total),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row %d: %w", n, err)
		}
	}

	return table.Render()
}

// ItemCounts returns how many times each item was bought, in first-purchase order
func ItemCounts(history []models.Purchase) ([]string, map[string]int) {
	var order []string
	counts := make(map[string]int)
	for _, p := range history {
		if p.IsInitial() {
			continue
		}
		if counts[p.Item] == 0 {
			order = append(order, p.Item)
		}
		counts[p.Item]++
	}
	return order, counts
}
