// Package report aggregates batch classification outcomes and renders them
// as interactive HTML charts.
package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ramonehamilton/deckscope/internal/archetype"
)

// Summary accumulates classification results for one batch.
type Summary struct {
	Format     string
	Total      int
	Failed     int
	Archetypes map[string]int
	Methods    map[archetype.Method]int
}

// NewSummary creates an empty summary for a format.
func NewSummary(format string) *Summary {
	return &Summary{
		Format:     format,
		Archetypes: make(map[string]int),
		Methods:    make(map[archetype.Method]int),
	}
}

// Add records one classification result.
func (s *Summary) Add(result *archetype.Result) {
	s.Total++
	s.Archetypes[result.Archetype]++
	s.Methods[result.Method]++
}

// AddFailure records a decklist that could not be classified.
func (s *Summary) AddFailure() {
	s.Total++
	s.Failed++
}

// sortedCounts returns label/count pairs sorted by count descending, then
// name, so charts render deterministically.
func sortedCounts(counts map[string]int) ([]string, []int) {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	values := make([]int, len(labels))
	for i, label := range labels {
		values[i] = counts[label]
	}
	return labels, values
}

// Render writes an HTML report with the archetype distribution and detection
// method breakdown.
func Render(summary *Summary, outputPath string) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Archetype Report - %s", summary.Format)

	page.AddCharts(
		archetypePie(summary),
		methodBar(summary),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func archetypePie(summary *Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Archetype Distribution",
			Subtitle: fmt.Sprintf("%d decklists, %d failed", summary.Total, summary.Failed),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	labels, values := sortedCounts(summary.Archetypes)
	data := make([]opts.PieData, len(labels))
	for i := range labels {
		data[i] = opts.PieData{Name: labels[i], Value: values[i]}
	}
	pie.AddSeries("Archetypes", data)
	return pie
}

func methodBar(summary *Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Detection Methods",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	methods := make(map[string]int, len(summary.Methods))
	for method, count := range summary.Methods {
		methods[string(method)] = count
	}
	labels, values := sortedCounts(methods)

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(labels).AddSeries("Decklists", data)
	return bar
}
