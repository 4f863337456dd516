package db

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// ErrNoSamples reports that a symbol has no numeric samples in the
// requested window.
var ErrNoSamples = errors.New("no numeric samples")

// SymbolStats summarises the numeric values recorded for one symbol code.
type SymbolStats struct {
	Code   string    `json:"code"`
	Name   string    `json:"name"`
	Unit   string    `json:"unit,omitempty"`
	Count  int       `json:"count"`
	Mean   float64   `json:"mean"`
	StdDev float64   `json:"std_dev"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	P50    float64   `json:"p50"`
	P90    float64   `json:"p90"`
	P99    float64   `json:"p99"`
	First  time.Time `json:"first"`
	Last   time.Time `json:"last"`
}

// SymbolStatsFor computes summary statistics over the numeric samples of
// one symbol code, optionally bounded by since/until. Symbols that only
// ever carried text values return ErrNoSamples.
func (db *DB) SymbolStatsFor(code string, since, until time.Time) (*SymbolStats, error) {
	query := `SELECT dp.name, dp.unit, dp.value, f.received_at
	          FROM data_points dp
	          JOIN frames f ON f.frame_id = dp.frame_id
	          WHERE dp.code = ? AND dp.value IS NOT NULL`
	args := []any{code}
	conds, timeArgs := timeConds(since, until, "f.received_at")
	for _, cond := range conds {
		query += " AND " + cond
	}
	args = append(args, timeArgs...)
	query += " ORDER BY f.received_at"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples for %s: %w", code, err)
	}
	defer rows.Close()

	stats := &SymbolStats{Code: code}
	var values []float64
	for rows.Next() {
		var value float64
		var receivedAt int64
		if err := rows.Scan(&stats.Name, &stats.Unit, &value, &receivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sample for %s: %w", code, err)
		}
		at := time.UnixMilli(receivedAt).UTC()
		if len(values) == 0 {
			stats.First = at
		}
		stats.Last = at
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("symbol %s: %w", code, ErrNoSamples)
	}

	sort.Float64s(values)
	stats.Count = len(values)
	stats.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		stats.StdDev = stat.StdDev(values, nil)
	}
	stats.Min = values[0]
	stats.Max = values[len(values)-1]
	stats.P50 = stat.Quantile(0.5, stat.Empirical, values, nil)
	stats.P90 = stat.Quantile(0.9, stat.Empirical, values, nil)
	stats.P99 = stat.Quantile(0.99, stat.Empirical, values, nil)
	return stats, nil
}

// StatsBySymbol computes summary statistics for every symbol with numeric
// samples in the window, ordered by code.
func (db *DB) StatsBySymbol(since, until time.Time) ([]SymbolStats, error) {
	symbols, err := db.AvailableSymbols()
	if err != nil {
		return nil, err
	}

	var all []SymbolStats
	seen := make(map[string]bool)
	for _, sym := range symbols {
		if seen[sym.Code] {
			continue
		}
		seen[sym.Code] = true
		stats, err := db.SymbolStatsFor(sym.Code, since, until)
		if errors.Is(err, ErrNoSamples) {
			continue
		}
		if err != nil {
			return nil, err
		}
		all = append(all, *stats)
	}
	return all, nil
}
