package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Critlist/witskit/internal/db"
	"github.com/Critlist/witskit/internal/pcap"
	"github.com/Critlist/witskit/internal/wits"
)

func runPcap(args []string) {
	fs := flag.NewFlagSet("pcap", flag.ExitOnError)
	port := fs.Int("port", 0, "Only extract frames from TCP streams on this port (0 = any)")
	metric := fs.Bool("metric", false, "Decode values as metric units")
	dbPath := fs.String("db", "", "Store decoded frames in this database")
	format := fs.String("format", "table", "Output format: table, json, or csv")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: witskit pcap [flags] <capture.pcap>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	captured, err := pcap.ReadFile(path, *port)
	if err != nil {
		log.Fatalf("Failed to read capture: %v", err)
	}
	if len(captured) == 0 {
		log.Fatalf("No WITS frames found in %s", path)
	}

	opts := []wits.Option{wits.WithSource("pcap:" + filepath.Base(path))}
	if *metric {
		opts = append(opts, wits.WithMetricUnits())
	}

	issues := 0
	var decoded []*wits.DecodedFrame
	for _, cf := range captured {
		frame, err := wits.Decode(cf.Text, opts...)
		if err != nil {
			log.Printf("skipping malformed frame from %s: %v", cf.Flow, err)
			issues++
			continue
		}
		// keep the capture timestamp so stored history reflects the wire
		frame.Timestamp = cf.Captured
		if len(frame.Errors) > 0 {
			issues++
		}
		decoded = append(decoded, frame)
	}

	if err := writeFrames(os.Stdout, decoded, *format); err != nil {
		log.Fatalf("Failed to write frames: %v", err)
	}

	if *dbPath != "" {
		database, err := db.NewDB(*dbPath)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()
		stored, err := database.StoreFrames(decoded)
		if err != nil {
			log.Fatalf("Stored %d frames before failure: %v", stored, err)
		}
		log.Printf("✓ Stored %d frames in %s", stored, *dbPath)
	}

	log.Printf("%d frames extracted, %d with decode issues", len(captured), issues)
}
