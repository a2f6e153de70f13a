/*

rlrepl is a command-line tool to parse and dump Rocket League replay files.

Usage:

	rlrepl [FLAGS] FILE

Flags:

	-frames
		decode the frame stream (default true; -frames=false skips it for a quicker dump)
	-lists
		include messages, marks and packages in the dump
	-indent
		pretty-print the JSON output (default true)
	-outfile string
		write output to this file instead of stdout

*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rlreplay/rlrep/repparser"
)

func main() {
	os.Exit(main1())
}

func main1() int {
	frames := flag.Bool("frames", true, "decode the frame stream")
	lists := flag.Bool("lists", true, "include messages, marks and packages in the dump")
	indent := flag.Bool("indent", true, "pretty-print the JSON output")
	outfile := flag.String("outfile", "", "write output to this file instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rlrepl [FLAGS] FILE")
		return 1
	}
	name := flag.Arg(0)

	data, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read replay: %v\n", err)
		return 2
	}

	start := time.Now()

	replay, err := repparser.ParseConfig(data, repparser.Config{Frames: *frames, Lists: *lists})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse replay: %v\n", err)
		return 2
	}

	elapsed := time.Since(start)

	out := os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output file: %v\n", err)
			return 3
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	if *indent {
		enc.SetIndent("", "\t")
	}
	if err := enc.Encode(replay); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode replay: %v\n", err)
		return 3
	}

	bytesPerSec := float64(len(data)) / elapsed.Seconds()
	fmt.Fprintf(os.Stderr, "%s %7d B %9d ns %8.1f B/s\n", name, len(data), elapsed.Nanoseconds(), bytesPerSec)

	return 0
}
