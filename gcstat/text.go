// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcstat

import (
	"fmt"
	"io"
	"strings"
)

const (
	labelWidth  = 25
	columnWidth = 20
	bannerWidth = 80
)

// FormatText writes a fixed-width text rendering of the tables to w.
// The label column is 25 characters wide and each backend column 20,
// left justified; the widths are a display concern only and do not
// grow with the content.
func FormatText(w io.Writer, tables []*Table) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "GC Performance Analysis Report")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	for _, t := range tables {
		fmt.Fprintln(w)
		fmt.Fprintln(w, banner)
		fmt.Fprintf(w, "Benchmark: %s\n", t.Benchmark)
		fmt.Fprintln(w, banner)
		fmt.Fprintln(w)

		titles := make([]string, len(t.Backends))
		for i, backend := range t.Backends {
			titles[i] = backendTitle(backend)
		}
		writeCells(w, "Metric", titles)
		fmt.Fprintln(w, strings.Repeat("-", labelWidth+(columnWidth+1)*len(t.Backends)))
		for _, row := range t.Rows {
			writeCells(w, row.Label, row.Cells)
		}

		if t.HasSpeedup {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "%-*s %.1fx faster than Mark-Sweep\n", labelWidth, "Copying Speedup:", t.Speedup)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Analysis Complete")
	fmt.Fprintln(w, banner)
}

// writeCells writes one table line: the label padded to labelWidth,
// then each cell padded to columnWidth, with trailing padding
// trimmed.
func writeCells(w io.Writer, label string, cells []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", labelWidth, label)
	for _, cell := range cells {
		fmt.Fprintf(&b, " %-*s", columnWidth, cell)
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}
