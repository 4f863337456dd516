// Command witskit decodes, streams, stores, and serves WITS Level 0
// drilling telemetry.
package main

import (
	"fmt"
	"os"

	"github.com/Critlist/witskit/internal/version"
)

const usage = `witskit - WITS Level 0 drilling telemetry toolkit

Usage: witskit <command> [options]

Commands:
  decode     Decode WITS frames from a file, argument text, or stdin
  convert    Convert a value between WITS units (--list-units to browse)
  symbols    Explore the symbol catalog (--code, --record, --search)
  validate   Check a file for structurally valid WITS frames
  stream     Decode a live feed (tcp://, serial://, file://) to stdout
  serve      Run the daemon: feed -> SQLite -> HTTP API
  query      Query stored frames and data points
  report     Render stored history as an HTML (and PNG) channel report
  pcap       Extract and decode WITS frames from a packet capture
  simulate   Serve a .wits file over TCP for development
  migrate    Manage the database schema (up/down/status/version/...)
  version    Print build information

Run 'witskit <command> -h' for the options of one command.

Try it out without a rig (two terminals):
  witskit simulate --file rig.wits --listen :8686 --loop
  witskit stream tcp://localhost:8686

Or run the full pipeline and browse http://localhost:8080/api/health:
  witskit serve --source tcp://localhost:8686 --db demo.db
  witskit query --db demo.db --codes 0108,0113
  witskit report --db demo.db --out report.html
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "decode":
		runDecode(os.Args[2:])
	case "convert":
		runConvert(os.Args[2:])
	case "symbols":
		runSymbols(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "stream":
		runStream(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "query":
		runQuery(os.Args[2:])
	case "report":
		runReport(os.Args[2:])
	case "pcap":
		runPcap(os.Args[2:])
	case "simulate":
		runSimulate(os.Args[2:])
	case "migrate":
		runMigrate(os.Args[2:])
	case "version":
		fmt.Println(version.String())
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		fmt.Print(usage)
		os.Exit(1)
	}
}
