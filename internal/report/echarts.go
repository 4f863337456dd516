package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes the report as one HTML page with a line chart per
// channel.
func RenderHTML(w io.Writer, data *Data) error {
	if len(data.Series) == 0 {
		return fmt.Errorf("no numeric channels to chart")
	}

	page := components.NewPage()
	page.PageTitle = data.Title
	for _, s := range data.Series {
		page.AddCharts(lineChart(data, s))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// lineChart builds the per-channel time series chart. The window rollup,
// when present, rides along in the subtitle so the summary numbers live
// next to the curve they describe.
func lineChart(data *Data, s Series) *charts.Line {
	subtitle := fmt.Sprintf("%d samples", len(s.Values))
	if st := data.statsFor(s.Code); st != nil {
		subtitle = fmt.Sprintf("n=%d  mean=%.2f  min=%.2f  max=%.2f  p90=%.2f",
			st.Count, st.Mean, st.Min, st.Max, st.P90)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: s.Label(), Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.Unit}),
	)

	x := make([]string, len(s.Times))
	y := make([]opts.LineData, len(s.Values))
	for i := range s.Times {
		x[i] = s.Times[i].UTC().Format("15:04:05")
		y[i] = opts.LineData{Value: s.Values[i]}
	}
	line.SetXAxis(x).
		AddSeries(s.Code, y, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}
