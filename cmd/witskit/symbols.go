package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Critlist/witskit/internal/wits"
)

func runSymbols(args []string) {
	fs := flag.NewFlagSet("symbols", flag.ExitOnError)
	code := fs.String("code", "", "Show one symbol by its 4-character code")
	record := fs.Int("record", 0, "List the symbols of one record type")
	search := fs.String("search", "", "Case-insensitive search over code, name, and description")
	all := fs.Bool("all", false, "List every symbol in the catalog")
	fs.Parse(args)

	switch {
	case *all:
		printSymbolRows(wits.Symbols())

	case *code != "":
		sym, ok := wits.Lookup(*code)
		if !ok {
			log.Fatalf("Unknown symbol code %q", *code)
		}
		printSymbolDetail(sym)

	case *search != "":
		matches := wits.Search(*search)
		if len(matches) == 0 {
			fmt.Printf("No symbols match %q\n", *search)
			return
		}
		printSymbolRows(matches)

	case *record != 0:
		syms := wits.ByRecordType(*record)
		if len(syms) == 0 {
			log.Fatalf("Unknown record type %d", *record)
		}
		fmt.Printf("Record %02d: %s [%s]\n\n", *record, wits.RecordDescription(*record), wits.RecordCategory(*record))
		printSymbolRows(syms)

	default:
		for _, rt := range wits.RecordTypes() {
			fmt.Printf("%02d  %-32s %3d symbols  [%s]\n",
				rt, wits.RecordDescription(rt), len(wits.ByRecordType(rt)), wits.RecordCategory(rt))
		}
	}
}

func printSymbolRows(syms []wits.Symbol) {
	for _, s := range syms {
		fmt.Printf("%s  %-10s %-7s %-8s %s\n", s.Code, s.Name, s.Type, s.FPSUnit, s.Description)
	}
}

func printSymbolDetail(s wits.Symbol) {
	fmt.Printf("Code:        %s\n", s.Code)
	fmt.Printf("Name:        %s\n", s.Name)
	fmt.Printf("Description: %s\n", s.Description)
	fmt.Printf("Record:      %02d %s [%s]\n", s.RecordType, wits.RecordDescription(s.RecordType), wits.RecordCategory(s.RecordType))
	fmt.Printf("Type:        %s\n", s.Type)
	fmt.Printf("Units:       %s (FPS) / %s (metric)\n", s.FPSUnit, s.MetricUnit)
}
