package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Critlist/witskit/internal/config"
	"github.com/Critlist/witskit/internal/db"
)

func runQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	dbPath := fs.String("db", config.DefaultDBPath, "SQLite database path")
	codes := fs.String("codes", "", "Comma-separated symbol codes to filter on (e.g. 0108,0113)")
	since := fs.String("since", "", "Start of time window (RFC3339 or Unix seconds)")
	until := fs.String("until", "", "End of time window (RFC3339 or Unix seconds)")
	limit := fs.Int("limit", 100, "Maximum rows to return")
	frames := fs.Bool("frames", false, "List stored frames instead of data points")
	symbols := fs.Bool("symbols", false, "List symbol codes seen in the stored history")
	stats := fs.Bool("stats", false, "Summary statistics per symbol")
	format := fs.String("format", "table", "Output format: table, json, or csv (csv: data points only)")
	fs.Parse(args)

	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatalf("Database %s not found: %v", *dbPath, err)
	}
	database, err := db.NewDBWithMigrationCheck(*dbPath, false)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	sinceT, err := parseCLITime(*since)
	if err != nil {
		log.Fatalf("Invalid --since: %v", err)
	}
	untilT, err := parseCLITime(*until)
	if err != nil {
		log.Fatalf("Invalid --until: %v", err)
	}

	var result any
	var table func(io.Writer)
	switch {
	case *symbols:
		rows, err := database.AvailableSymbols()
		if err != nil {
			log.Fatalf("Failed to query symbols: %v", err)
		}
		result = rows
		table = func(w io.Writer) { printSymbolsTable(w, rows) }
	case *stats:
		rows, err := database.StatsBySymbol(sinceT, untilT)
		if err != nil {
			log.Fatalf("Failed to compute stats: %v", err)
		}
		result = rows
		table = func(w io.Writer) { printStatsTable(w, rows) }
	case *frames:
		rows, err := database.QueryFrames(sinceT, untilT, *limit)
		if err != nil {
			log.Fatalf("Failed to query frames: %v", err)
		}
		result = rows
		table = func(w io.Writer) { printFramesTable(w, rows) }
	default:
		rows, err := database.QueryDataPoints(splitCodes(*codes), sinceT, untilT, *limit)
		if err != nil {
			log.Fatalf("Failed to query data points: %v", err)
		}
		result = rows
		table = func(w io.Writer) { printPointsTable(w, rows) }
	}

	switch strings.ToLower(*format) {
	case "table":
		table(os.Stdout)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to encode results: %v", err)
		}
	case "csv":
		points, ok := result.([]db.StoredPoint)
		if !ok {
			log.Fatalf("CSV output is only supported for data point queries")
		}
		if err := writePointsCSV(os.Stdout, points); err != nil {
			log.Fatalf("Failed to write CSV: %v", err)
		}
	default:
		log.Fatalf("Unknown format %q (want table, json, or csv)", *format)
	}
}

// parseCLITime accepts an RFC3339 timestamp or Unix seconds. An empty
// string means unbounded and returns the zero time.
func parseCLITime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (want RFC3339 or Unix seconds)", s)
}

// splitCodes turns a comma-separated code list into a slice, dropping
// empty entries. Nil means no code filter.
func splitCodes(s string) []string {
	var codes []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

const tableTimeFormat = "2006-01-02 15:04:05"

func printPointsTable(w io.Writer, points []db.StoredPoint) {
	if len(points) == 0 {
		fmt.Fprintln(w, "No data points found")
		return
	}
	fmt.Fprintf(w, "%-19s  %-4s  %-12s %14s %-8s %s\n", "RECEIVED", "CODE", "NAME", "VALUE", "UNIT", "SOURCE")
	for _, p := range points {
		value := p.Text
		if p.Value != nil {
			value = strconv.FormatFloat(*p.Value, 'f', -1, 64)
		} else if value == "" {
			value = p.RawValue
		}
		unit := p.Unit
		if unit == "----" {
			unit = ""
		}
		fmt.Fprintf(w, "%-19s  %-4s  %-12s %14s %-8s %s\n",
			p.ReceivedAt.Format(tableTimeFormat), p.Code, p.Name, value, unit, p.Source)
	}
}

func printFramesTable(w io.Writer, frames []db.StoredFrame) {
	if len(frames) == 0 {
		fmt.Fprintln(w, "No frames found")
		return
	}
	fmt.Fprintf(w, "%-36s  %-19s  %6s  %6s  %s\n", "FRAME ID", "RECEIVED", "POINTS", "ERRORS", "SOURCE")
	for _, f := range frames {
		fmt.Fprintf(w, "%-36s  %-19s  %6d  %6d  %s\n",
			f.FrameID, f.ReceivedAt.Format(tableTimeFormat), f.PointCount, f.ErrorCount, f.Source)
	}
}

func printSymbolsTable(w io.Writer, symbols []db.SymbolSummary) {
	if len(symbols) == 0 {
		fmt.Fprintln(w, "No symbols found")
		return
	}
	fmt.Fprintf(w, "%-4s  %-16s %-8s %8s  %-19s  %s\n", "CODE", "NAME", "UNIT", "COUNT", "FIRST SEEN", "LAST SEEN")
	for _, s := range symbols {
		unit := s.Unit
		if unit == "----" {
			unit = ""
		}
		fmt.Fprintf(w, "%-4s  %-16s %-8s %8d  %-19s  %s\n",
			s.Code, s.Name, unit, s.Count,
			s.FirstSeen.Format(tableTimeFormat), s.LastSeen.Format(tableTimeFormat))
	}
}

func printStatsTable(w io.Writer, stats []db.SymbolStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No numeric samples found")
		return
	}
	fmt.Fprintf(w, "%-4s  %-16s %8s %12s %12s %12s %12s %12s %12s\n",
		"CODE", "NAME", "COUNT", "MEAN", "STDDEV", "MIN", "MAX", "P50", "P90")
	for _, s := range stats {
		fmt.Fprintf(w, "%-4s  %-16s %8d %12.3f %12.3f %12.3f %12.3f %12.3f %12.3f\n",
			s.Code, s.Name, s.Count, s.Mean, s.StdDev, s.Min, s.Max, s.P50, s.P90)
	}
}

func writePointsCSV(w io.Writer, points []db.StoredPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"received_at", "code", "name", "record_type", "raw_value", "value", "text", "unit", "source", "frame_id"}); err != nil {
		return err
	}
	for _, p := range points {
		value := ""
		if p.Value != nil {
			value = strconv.FormatFloat(*p.Value, 'f', -1, 64)
		}
		if err := cw.Write([]string{
			p.ReceivedAt.UTC().Format(time.RFC3339),
			p.Code, p.Name, strconv.Itoa(p.RecordType),
			p.RawValue, value, p.Text, p.Unit, p.Source, p.FrameID,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
