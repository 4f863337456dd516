// Package report renders stored WITS history as chart reports. Data
// preparation is kept separate from rendering so the transforms stay
// testable without driving a chart library.
package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Critlist/witskit/internal/db"
)

// Series is one channel's numeric history in time order.
type Series struct {
	Code   string      `json:"code"`
	Name   string      `json:"name"`
	Unit   string      `json:"unit,omitempty"`
	Times  []time.Time `json:"times"`
	Values []float64   `json:"values"`
}

// Label returns the display label for chart titles and legends.
func (s Series) Label() string {
	if s.Unit == "" || s.Unit == "----" {
		return fmt.Sprintf("%s %s", s.Code, s.Name)
	}
	return fmt.Sprintf("%s %s (%s)", s.Code, s.Name, s.Unit)
}

// Data holds everything one report renders: per-channel series plus the
// summary rollups for the same window.
type Data struct {
	Title     string           `json:"title"`
	Generated time.Time        `json:"generated"`
	Since     time.Time        `json:"since,omitempty"`
	Until     time.Time        `json:"until,omitempty"`
	Series    []Series         `json:"series"`
	Stats     []db.SymbolStats `json:"stats"`
}

// BuildSeries groups stored points into per-code series sorted by code.
// Text points are skipped; each series is ordered oldest first regardless
// of input order.
func BuildSeries(points []db.StoredPoint) []Series {
	type sample struct {
		t time.Time
		v float64
	}
	grouped := make(map[string][]sample)
	meta := make(map[string]db.StoredPoint)
	for _, p := range points {
		if p.Value == nil {
			continue
		}
		if _, ok := meta[p.Code]; !ok {
			meta[p.Code] = p
		}
		grouped[p.Code] = append(grouped[p.Code], sample{p.ReceivedAt, *p.Value})
	}

	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	series := make([]Series, 0, len(codes))
	for _, code := range codes {
		samples := grouped[code]
		sort.Slice(samples, func(i, j int) bool {
			return samples[i].t.Before(samples[j].t)
		})

		s := Series{
			Code:   code,
			Name:   meta[code].Name,
			Unit:   meta[code].Unit,
			Times:  make([]time.Time, len(samples)),
			Values: make([]float64, len(samples)),
		}
		for i, smp := range samples {
			s.Times[i] = smp.t
			s.Values[i] = smp.v
		}
		series = append(series, s)
	}
	return series
}

// Collect pulls a report window out of the database. codes narrows the
// report to specific channels; empty means every channel stored.
func Collect(database *db.DB, codes []string, since, until time.Time, limit int) (*Data, error) {
	points, err := database.QueryDataPoints(codes, since, until, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query data points: %w", err)
	}
	series := BuildSeries(points)

	stats := make([]db.SymbolStats, 0, len(series))
	for _, s := range series {
		st, err := database.SymbolStatsFor(s.Code, since, until)
		if err != nil {
			if errors.Is(err, db.ErrNoSamples) {
				continue
			}
			return nil, err
		}
		stats = append(stats, *st)
	}

	return &Data{
		Title:     "WITS Channel Report",
		Generated: time.Now().UTC(),
		Since:     since,
		Until:     until,
		Series:    series,
		Stats:     stats,
	}, nil
}

// statsFor finds the rollup matching a series code, if the window has one.
func (d *Data) statsFor(code string) *db.SymbolStats {
	for i := range d.Stats {
		if d.Stats[i].Code == code {
			return &d.Stats[i]
		}
	}
	return nil
}
