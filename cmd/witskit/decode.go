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

	"github.com/Critlist/witskit/internal/wits"
)

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	file := fs.String("file", "", "Read frame text from a file ('-' for stdin)")
	metric := fs.Bool("metric", false, "Decode with metric units (default: FPS)")
	convertTo := fs.String("convert", "", "Re-express numeric values in a system: fps or metric")
	strict := fs.Bool("strict", false, "Exit non-zero when any frame carries decode errors")
	format := fs.String("format", "table", "Output format: table, json, or csv")
	source := fs.String("source", "", "Source label recorded on decoded frames")
	merge := fs.Bool("merge", false, "Flatten all frames into one combined view")
	fs.Parse(args)

	text, err := readInput(*file, fs.Args())
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	opts, err := decodeOptions(*metric, *source, *strict, *convertTo)
	if err != nil {
		log.Fatalf("%v", err)
	}

	frames, err := wits.DecodeAll(text, opts...)
	if err != nil {
		log.Fatalf("Decode failed: %v", err)
	}
	if *merge {
		frames = []*wits.DecodedFrame{wits.Combine(frames)}
	}

	if err := writeFrames(os.Stdout, frames, *format); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *strict && wits.HasErrors(frames) {
		os.Exit(1)
	}
}

// readInput resolves the decode input: an explicit file, the remaining
// arguments joined as frame text, or stdin when neither is given.
func readInput(file string, args []string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	if file != "" {
		data, err := os.ReadFile(file)
		return string(data), err
	}
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

func decodeOptions(metric bool, source string, strict bool, convertTo string) ([]wits.Option, error) {
	var opts []wits.Option
	if metric {
		opts = append(opts, wits.WithMetricUnits())
	}
	if source != "" {
		opts = append(opts, wits.WithSource(source))
	}
	if strict {
		opts = append(opts, wits.WithStrict())
	}
	switch strings.ToLower(convertTo) {
	case "":
	case "fps", "field":
		opts = append(opts, wits.WithConvertTo(wits.FPS))
	case "metric", "si":
		opts = append(opts, wits.WithConvertTo(wits.Metric))
	default:
		return nil, fmt.Errorf("invalid --convert value %q (want fps or metric)", convertTo)
	}
	return opts, nil
}

func writeFrames(w io.Writer, frames []*wits.DecodedFrame, format string) error {
	switch strings.ToLower(format) {
	case "table":
		for i, frame := range frames {
			if i > 0 {
				fmt.Fprintln(w)
			}
			printDecodedFrame(w, i+1, frame)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(frames)
	case "csv":
		return writeFramesCSV(w, frames)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or csv)", format)
	}
}

func printDecodedFrame(w io.Writer, n int, frame *wits.DecodedFrame) {
	fmt.Fprintf(w, "Frame %d", n)
	if frame.Source != "" {
		fmt.Fprintf(w, " from %s", frame.Source)
	}
	fmt.Fprintf(w, " (%d points, %d errors)\n", len(frame.Points), len(frame.Errors))

	for _, p := range frame.Points {
		value := p.Text
		if p.IsNumeric() {
			value = strconv.FormatFloat(*p.Value, 'f', -1, 64)
		} else if value == "" {
			value = p.RawValue
		}
		unit := string(p.Unit)
		if unit == "----" {
			unit = ""
		}
		fmt.Fprintf(w, "  %s  %-12s %14s %-8s %s\n", p.Code, p.Name, value, unit, p.Description)
	}
	for _, e := range frame.Errors {
		fmt.Fprintf(w, "  ! %s\n", e)
	}
}

func writeFramesCSV(w io.Writer, frames []*wits.DecodedFrame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "code", "name", "record_type", "raw_value", "value", "text", "unit"}); err != nil {
		return err
	}
	for i, frame := range frames {
		for _, p := range frame.Points {
			value := ""
			if p.Value != nil {
				value = strconv.FormatFloat(*p.Value, 'f', -1, 64)
			}
			row := []string{
				strconv.Itoa(i + 1), p.Code, p.Name, strconv.Itoa(p.RecordType),
				p.RawValue, value, p.Text, string(p.Unit),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
