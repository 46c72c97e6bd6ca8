// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gcstat compares garbage-collector backends from benchmark logs.
//
// Usage:
//
//	gcstat [-format fmt] [resultdir]
//
// Gcstat reads every "<backend>_<benchmark>.log" file in resultdir
// (default "results"), extracts the statistics from each log's
// "Result: (...)" block, and prints one comparison block per
// benchmark with the backends side by side. When both the mark-sweep
// and copying backends report a positive total GC time, the block
// ends with copying's speedup factor over mark-sweep.
//
// Logs that do not follow the naming convention or contain no result
// block are ignored; a results directory may hold unrelated or
// partial logs. Only a missing results directory is reported.
//
// The -format option selects the output: fixed-width text (the
// default), csv, or a standalone html page. All output goes to
// standard output.
//
// For example, given results/mark-sweep_gc-churn.log containing
//
//	Result: ( (collections . 10) (total-gc-time-ms . 100) )
//
// and results/copying_gc-churn.log containing
//
//	Result: ( (collections . 4) (total-gc-time-ms . 25) )
//
// the gc-churn block of "gcstat results" reports both backends'
// collections and GC times, N/A for the generational column, and a
// "Copying Speedup: 4.0x" line.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/miyaichi/gcbench/gcstat"
	"github.com/miyaichi/gcbench/gcstats"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gcstat [options] [resultdir]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var flagFormat = flag.String("format", "text", "print results in `format`: text, csv, html")

func main() {
	log.SetPrefix("gcstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
	}
	dir := "results"
	if flag.NArg() == 1 {
		dir = flag.Arg(0)
	}

	if err := gcstatMain(os.Stdout, *flagFormat, dir); err != nil {
		log.Print(err)
		exit(1)
	}
}

// gcstatMain runs the analysis and writes the report to w. It is the
// testable body of the command.
func gcstatMain(w io.Writer, format, dir string) error {
	c := new(gcstat.Collection)
	files := gcstats.Files{Dir: dir}
	for files.Scan() {
		c.AddRun(files.Result())
	}
	if err := files.Err(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("results directory %q not found", dir)
		}
		return err
	}

	tables := c.Tables()
	var buf bytes.Buffer
	switch format {
	case "text":
		gcstat.FormatText(&buf, tables)
	case "csv":
		if err := gcstat.FormatCSV(&buf, tables); err != nil {
			return err
		}
	case "html":
		buf.WriteString(htmlHeader)
		gcstat.FormatHTML(&buf, tables)
		buf.WriteString(htmlFooter)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>GC Performance Analysis Report</title>
<style>
.gcbench { border-collapse: collapse; }
.gcbench th:nth-child(1) { text-align: left; }
.gcbench tbody td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.gcbench tr.benchmark th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
.gcbench td.na { text-align: center !important; color: #999; }
.gcbench tr.speedup td { font-weight: bold; }
</style>
</head>
<body>
`
var htmlFooter = `</body>
</html>
`
