package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Critlist/witskit/internal/wits"
)

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	listUnits := fs.Bool("list-units", false, "List supported units grouped by category")
	fs.Parse(args)

	if *listUnits {
		printUnitTable()
		return
	}

	if fs.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Usage: witskit convert <value> <from> <to>")
		fmt.Fprintln(os.Stderr, "Example: witskit convert 3650.4 FEET METERS")
		os.Exit(1)
	}

	value, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		log.Fatalf("Invalid value %q: %v", fs.Arg(0), err)
	}
	from, ok := wits.ParseUnit(fs.Arg(1))
	if !ok {
		log.Fatalf("Unknown unit %q (try --list-units)", fs.Arg(1))
	}
	to, ok := wits.ParseUnit(fs.Arg(2))
	if !ok {
		log.Fatalf("Unknown unit %q (try --list-units)", fs.Arg(2))
	}

	result, err := wits.Convert(value, from, to)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("%g %s = %g %s\n", value, from, result, to)
}

func printUnitTable() {
	for i, cat := range wits.Categories() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s:\n", cat)
		for _, u := range wits.UnitsIn(cat) {
			fmt.Printf("  %-8s %s\n", wits.UnitName(u), u)
		}
	}
}
