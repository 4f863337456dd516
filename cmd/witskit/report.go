package main

import (
	"flag"
	"log"
	"os"

	"github.com/Critlist/witskit/internal/config"
	"github.com/Critlist/witskit/internal/db"
	"github.com/Critlist/witskit/internal/report"
)

func runReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	dbPath := fs.String("db", config.DefaultDBPath, "SQLite database path")
	codes := fs.String("codes", "", "Comma-separated symbol codes to chart (default: all numeric symbols)")
	since := fs.String("since", "", "Start of time window (RFC3339 or Unix seconds)")
	until := fs.String("until", "", "End of time window (RFC3339 or Unix seconds)")
	limit := fs.Int("limit", 10000, "Maximum data points per report")
	out := fs.String("out", "wits_report.html", "Output HTML file")
	pngDir := fs.String("png-dir", "", "Also save one PNG plot per channel in this directory")
	title := fs.String("title", "", "Report title (default: derived from the time window)")
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

	data, err := report.Collect(database, splitCodes(*codes), sinceT, untilT, *limit)
	if err != nil {
		log.Fatalf("Failed to collect report data: %v", err)
	}
	if *title != "" {
		data.Title = *title
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	if err := report.RenderHTML(f, data); err != nil {
		f.Close()
		log.Fatalf("Failed to render report: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("✓ Wrote %s (%d channels)", *out, len(data.Series))

	if *pngDir != "" {
		count, err := report.SavePNGs(data, *pngDir)
		if err != nil {
			log.Fatalf("Failed to save PNG plots: %v", err)
		}
		log.Printf("✓ Saved %d PNG plots to %s", count, *pngDir)
	}
}
