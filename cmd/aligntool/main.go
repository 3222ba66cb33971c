// Command aligntool aligns, flags and correlates paired measurement series.
//
// Usage:
//
//	aligntool [--config file.yaml] [--verbose] <command> [flags] [args]
//
// Examples:
//
//	aligntool closest --reference 1,5,10 --policy closest_low 6 7.5
//	aligntool reverse --width 4 1 0 0 2 0 8
//	aligntool reverse --width 4 --quality patchy 1 16 3
//	aligntool correlate flight.csv --x pressure --y altitude --index time
//	aligntool correlate flight.csv --x pressure --y altitude --index time --start 100 --end 900 --json
//	aligntool lag flight.csv --x pressure --y altitude --max-lag 50
//	aligntool info
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
