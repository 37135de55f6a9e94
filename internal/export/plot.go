// Package export writes run results as image files (PNG/SVG/PDF, chosen
// by extension).
package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/heatsim/internal/thermo"
)

// Snapshots plots the temperature profile at the selected row indices,
// one line per snapshot, against node position.
func Snapshots(path, title string, result *thermo.Result, rows []int) error {
	if len(result.Profiles) == 0 {
		return fmt.Errorf("export: empty result")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "temperature"

	for i, row := range rows {
		if row < 0 || row >= len(result.Profiles) {
			return fmt.Errorf("export: row %d outside [0, %d)", row, len(result.Profiles))
		}
		pts := make(plotter.XYs, len(result.Points))
		for j := range result.Points {
			pts[j].X = result.Points[j]
			pts[j].Y = result.Profiles[row][j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("t=%.0f", result.Times[row]), line)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// PeakDecay plots peak amplitude against time for one run.
func PeakDecay(path, title string, result *thermo.Result) error {
	if len(result.Profiles) == 0 {
		return fmt.Errorf("export: empty result")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "peak |T|"

	pts := make(plotter.XYs, len(result.Profiles))
	for k := range result.Profiles {
		pts[k].X = result.Times[k]
		pts[k].Y = result.Profiles[k].MaxAbs()
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// DefaultRows picks evenly spaced snapshot indices, first and last rows
// included.
func DefaultRows(total, count int) []int {
	if count < 2 || total < 2 {
		return []int{0}
	}
	if count > total {
		count = total
	}
	rows := make([]int, count)
	for i := range rows {
		rows[i] = i * (total - 1) / (count - 1)
	}
	return rows
}
