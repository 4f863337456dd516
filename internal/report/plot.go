package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePNGs writes one PNG per channel into outputDir and returns the
// number of files written.
func SavePNGs(data *Data, outputDir string) (int, error) {
	if len(data.Series) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	written := 0
	for i, s := range data.Series {
		p := plot.New()
		p.Title.Text = s.Label()
		p.X.Label.Text = "Time"
		p.X.Tick.Marker = plot.TimeTicks{Format: "15:04:05"}
		if s.Unit != "" && s.Unit != "----" {
			p.Y.Label.Text = s.Unit
		} else {
			p.Y.Label.Text = "Value"
		}

		pts := make(plotter.XYs, len(s.Values))
		for j := range s.Values {
			pts[j] = plotter.XY{X: float64(s.Times[j].Unix()), Y: s.Values[j]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return written, fmt.Errorf("channel %s: %w", s.Code, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Code, line)
		p.Legend.Top = true

		file := filepath.Join(outputDir, fmt.Sprintf("channel_%s.png", s.Code))
		if err := p.Save(14*vg.Inch, 4*vg.Inch, file); err != nil {
			return written, fmt.Errorf("save channel %s plot: %w", s.Code, err)
		}
		written++
	}
	return written, nil
}
