package render

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/yearsheet/internal/yearsheet"
)

// gridXYZ adapts a year grid to the plotter.GridXYZ interface. Padding cells
// report NaN so the heat map leaves them unfilled.
type gridXYZ struct {
	g *yearsheet.Grid
}

func (d gridXYZ) Dims() (c, r int) { return d.g.Weeks, yearsheet.DaysPerWeek }

func (d gridXYZ) Z(c, r int) float64 {
	cell := d.g.Cells[r][c]
	if !cell.Defined() {
		return math.NaN()
	}
	return cell.Value
}

func (d gridXYZ) X(c int) float64 { return float64(c) }
func (d gridXYZ) Y(r int) float64 { return float64(r) }

// greenPalette mirrors the HTML renderer's sequential greens.
type greenPalette struct{}

func (greenPalette) Colors() []color.Color {
	return []color.Color{
		color.RGBA{R: 0xe5, G: 0xf5, B: 0xe0, A: 0xff},
		color.RGBA{R: 0xa1, G: 0xd9, B: 0x9b, A: 0xff},
		color.RGBA{R: 0x31, G: 0xa3, B: 0x54, A: 0xff},
	}
}

// SavePNG writes the year sheet heatmap to path and, unless bare is set, the
// weekly load bar chart to a sibling file with a _weeks suffix. It returns
// the files written.
func SavePNG(path string, g *yearsheet.Grid, bare bool) ([]string, error) {
	if err := saveYearSheetPNG(path, g); err != nil {
		return nil, fmt.Errorf("year sheet plot: %w", err)
	}
	files := []string{path}
	if bare {
		return files, nil
	}

	ext := filepath.Ext(path)
	weekPath := strings.TrimSuffix(path, ext) + "_weeks" + ext
	if err := saveWeekLoadPNG(weekPath, g); err != nil {
		return files, fmt.Errorf("week load plot: %w", err)
	}
	return append(files, weekPath), nil
}

func saveYearSheetPNG(path string, g *yearsheet.Grid) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d Year Sheet", g.Year)
	p.X.Label.Text = "weeks"
	p.Y.Label.Text = "days"

	hm := plotter.NewHeatMap(gridXYZ{g}, greenPalette{})
	hm.Min, hm.Max = g.ValueRange()
	p.Add(hm)

	if err := p.Save(12*vg.Inch, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func saveWeekLoadPNG(path string, g *yearsheet.Grid) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d Week Load", g.Year)
	p.X.Label.Text = "weeks"
	p.Y.Label.Text = "Load"

	bars, err := plotter.NewBarChart(plotter.Values(g.WeeklyAggregate()), vg.Points(8))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 0x31, G: 0xa3, B: 0x54, A: 0x80}
	bars.LineStyle.Width = 0
	p.Add(bars)

	if err := p.Save(12*vg.Inch, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
