package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Critlist/witskit/internal/wits"
)

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: witskit validate <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	raw := wits.SplitFrames(string(data))
	if len(raw) == 0 {
		fmt.Printf("%s: no complete WITS frames found\n", path)
		os.Exit(1)
	}

	issues := 0
	for i, text := range raw {
		frame, err := wits.Decode(text)
		if err != nil {
			fmt.Printf("Frame %d: %v\n", i+1, err)
			issues++
			continue
		}
		if len(frame.Errors) > 0 {
			fmt.Printf("Frame %d: %d points, %d issue(s)\n", i+1, len(frame.Points), len(frame.Errors))
			for _, e := range frame.Errors {
				fmt.Printf("  ! %s\n", e)
			}
			issues++
			continue
		}
		fmt.Printf("Frame %d: OK (%d points)\n", i+1, len(frame.Points))
	}

	if issues > 0 {
		fmt.Printf("\n%d frames, %d with issues\n", len(raw), issues)
		os.Exit(1)
	}
	fmt.Printf("\n✓ %d valid frames\n", len(raw))
}
