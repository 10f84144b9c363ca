// Package render turns a laid-out year grid into chart files: interactive
// HTML via go-echarts or static PNG via gonum/plot.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/yearsheet/internal/yearsheet"
)

// Sequential greens, light to dark, with a dark border for cell outlines.
// Same palette as GitHub-style contribution calendars.
var (
	greens      = []string{"#e5f5e0", "#a1d99b", "#31a354"}
	greenBorder = "#006d2c"
	greenBar    = "#31a354"
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WriteHTML renders the year sheet heatmap, and unless bare is set the
// weekly load bar chart below it, as a self-contained HTML page.
func WriteHTML(w io.Writer, g *yearsheet.Grid, bare bool) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%d Year Sheet", g.Year)
	page.AddCharts(yearSheetChart(g))
	if !bare {
		page.AddCharts(weekLoadChart(g))
	}
	return page.Render(w)
}

// SaveHTML writes the HTML page to path.
func SaveHTML(path string, g *yearsheet.Grid, bare bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := WriteHTML(f, g, bare); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}

// yearSheetChart builds the 7xW calendar heatmap. Padding cells get no data
// point and stay blank.
func yearSheetChart(g *yearsheet.Grid) *charts.HeatMap {
	data := make([]opts.HeatMapData, 0, yearsheet.DaysPerWeek*g.Weeks)
	for row, cells := range g.Cells {
		for col, c := range cells {
			if !c.Defined() {
				continue
			}
			data = append(data, opts.HeatMapData{
				Name:  g.DateOf(c.Day).Format("2006-01-02"),
				Value: []interface{}{col, row, c.Value},
			})
		}
	}
	min, max := g.ValueRange()

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "950px", Height: "260px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%d Year Sheet", g.Year)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "weeks"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "days", Data: weekdayLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			InRange:    &opts.VisualMapInRange{Color: greens},
		}),
	)
	hm.SetXAxis(weekLabels(g.Weeks)).
		AddSeries("daily", data, charts.WithItemStyleOpts(opts.ItemStyle{BorderColor: greenBorder}))
	return hm
}

// weekLoadChart builds the per-week sum bar chart.
func weekLoadChart(g *yearsheet.Grid) *charts.Bar {
	agg := g.WeeklyAggregate()
	y := make([]opts.BarData, len(agg))
	for i, s := range agg {
		y[i] = opts.BarData{Value: s}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "950px", Height: "260px"}),
		charts.WithTitleOpts(opts.Title{Title: "Week Load"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "weeks"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Load"}),
	)
	bar.SetXAxis(weekLabels(g.Weeks)).
		AddSeries("load", y, charts.WithItemStyleOpts(opts.ItemStyle{Color: greenBar, Opacity: opts.Float(0.5)}))
	return bar
}

// weekLabels numbers the week columns from 1.
func weekLabels(weeks int) []string {
	labels := make([]string, weeks)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}
