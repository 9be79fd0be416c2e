package report

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/clicker-sim/internal/clicker"
	"github.com/napolitain/clicker-sim/internal/models"
)

// Point is one (time, cumulative resources) sample
type Point struct {
	Time  float64
	Total float64
}

const (
	minChartWidth  = 10
	minChartHeight = 3
	plotRune       = '•'
)

var (
	chartTitleStyle = lipgloss.NewStyle().Bold(true)
	chartFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// SeriesFromHistory extracts (time, total) pairs from a purchase history
func SeriesFromHistory(history []models.Purchase) []Point {
	points := make([]Point, len(history))
	for i, p := range history {
		points[i] = Point{Time: p.Time, Total: p.Total}
	}
	return points
}

// Series is SeriesFromHistory plus the final state, so the tail after the last
// purchase is included
func Series(state *clicker.State) []Point {
	points := SeriesFromHistory(state.History())
	last := points[len(points)-1]
	if state.Time() > last.Time || state.Total() != last.Total {
		points = append(points, Point{Time: state.Time(), Total: state.Total()})
	}
	return points
}

// valueAt interpolates the total at time t; points must be ordered by time
func valueAt(points []Point, t float64) float64 {
	for i, p := range points {
		if p.Time < t {
			continue
		}
		if i == 0 || p.Time == points[i-1].Time {
			return p.Total
		}
		prev := points[i-1]
		frac := (t - prev.Time) / (p.Time - prev.Time)
		return prev.Total + frac*(p.Total-prev.Total)
	}
	return points[len(points)-1].Total
}

// Chart draws points as a width x height text plot inside a rounded frame.
// Every column holds exactly one plotted sample.
func Chart(title string, points []Point, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)

	maxTime := points[len(points)-1].Time
	maxTotal := 0.0
	for _, p := range points {
		maxTotal = math.Max(maxTotal, p.Total)
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	for c := 0; c < width; c++ {
		t := maxTime * float64(c) / float64(width-1)
		row := height - 1
		if maxTotal > 0 {
			row -= int(math.Round(valueAt(points, t) / maxTotal * float64(height-1)))
		}
		grid[row][c] = plotRune
	}

	top, bottom := FormatAmount(maxTotal), "0"
	gutter := max(len(top), len(bottom))

	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(title))
	b.WriteByte('\n')
	for r, line := range grid {
		label := ""
		switch r {
		case 0:
			label = top
		case height - 1:
			label = bottom
		}
		b.WriteString(strings.Repeat(" ", gutter-len(label)))
		b.WriteString(label)
		b.WriteString(" │")
		b.WriteString(string(line))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", gutter+1))
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", width))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", gutter+2))
	b.WriteString("time 0 … " + FormatAmount(maxTime))

	return chartFrameStyle.Render(b.String())
}
