// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcstat aggregates parsed GC benchmark runs and builds
// side-by-side comparison tables of the collector backends.
package gcstat

import (
	"sort"
	"strconv"
	"strings"

	"github.com/miyaichi/gcbench/gcstats"
)

// DefaultBackends is the canonical backend column layout: the three
// collector implementations shipped with the interpreter, in report
// order.
var DefaultBackends = []string{"mark-sweep", "copying", "generational"}

// NA is the sentinel rendered for a backend that has no data for a
// metric.
const NA = "N/A"

// A Collection accumulates benchmark runs and turns them into
// comparison tables.
//
// The zero value is ready to use and displays DefaultBackends.
type Collection struct {
	// Backends is the ordered list of backend columns to display.
	// Runs from backends outside this list are still aggregated
	// but do not appear in the tables. If nil, DefaultBackends is
	// used.
	Backends []string

	// groups maps benchmark name to backend name to that pair's
	// statistics.
	groups map[string]map[string]*gcstats.StatsBlock
}

// Add records the statistics for one (benchmark, backend) pair. A
// later Add for the same pair replaces the earlier one; a re-run of a
// benchmark supersedes stale data.
func (c *Collection) Add(benchmark, backend string, stats *gcstats.StatsBlock) {
	if c.groups == nil {
		c.groups = make(map[string]map[string]*gcstats.StatsBlock)
	}
	byBackend := c.groups[benchmark]
	if byBackend == nil {
		byBackend = make(map[string]*gcstats.StatsBlock)
		c.groups[benchmark] = byBackend
	}
	byBackend[backend] = stats
}

// AddRun records a run read from a results directory.
func (c *Collection) AddRun(r *gcstats.Run) {
	c.Add(r.Benchmark, r.Backend, r.Stats)
}

// Benchmarks returns the benchmark names in the collection in
// ascending lexicographic order. This is the report order.
func (c *Collection) Benchmarks() []string {
	names := make([]string, 0, len(c.groups))
	for name := range c.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Collection) backendList() []string {
	if c.Backends != nil {
		return c.Backends
	}
	return DefaultBackends
}

// A metric is one row of the comparison table: the StatsBlock key it
// reads and its display label.
type metric struct {
	key   string
	label string
}

// metrics is the fixed row schema of every comparison table.
var metrics = []metric{
	{"collections", "Collections"},
	{"total-gc-time-ms", "Total GC Time (ms)"},
	{"max-pause-ms", "Max Pause (ms)"},
	{"avg-pause-ms", "Avg Pause (ms)"},
	{"objects-scanned", "Objects Scanned"},
	{"objects-copied", "Objects Copied"},
	{"survival-rate", "Survival Rate"},
	{"metadata-bytes", "Metadata (bytes)"},
}

// A Table is the comparison for a single benchmark: one formatted
// cell per (metric, backend), plus the derived speedup when it is
// defined.
type Table struct {
	Benchmark string
	Backends  []string
	Rows      []*Row

	// Speedup is mark-sweep's total GC time divided by copying's,
	// valid only when HasSpeedup is set. It is defined whenever
	// both backends report a strictly positive numeric
	// total-gc-time-ms, independent of the displayed columns.
	Speedup    float64
	HasSpeedup bool
}

// A Row is one metric across all backend columns. Cells holds the
// formatted value, or NA, per backend in Table.Backends order.
type Row struct {
	Label string
	Key   string
	Cells []string
}

// Tables builds one comparison table per benchmark, in Benchmarks()
// order.
func (c *Collection) Tables() []*Table {
	backends := c.backendList()
	var tables []*Table
	for _, bench := range c.Benchmarks() {
		byBackend := c.groups[bench]
		t := &Table{Benchmark: bench, Backends: backends}
		for _, m := range metrics {
			row := &Row{Label: m.label, Key: m.key}
			for _, backend := range backends {
				cell := NA
				if stats := byBackend[backend]; stats != nil {
					if v, ok := stats.Lookup(m.key); ok {
						cell = formatValue(v)
					}
				}
				row.Cells = append(row.Cells, cell)
			}
			t.Rows = append(t.Rows, row)
		}
		t.Speedup, t.HasSpeedup = speedup(byBackend)
		tables = append(tables, t)
	}
	return tables
}

// formatValue renders one cell: floats to two decimal places,
// everything else in its default string form.
func formatValue(v gcstats.Value) string {
	if v.Kind == gcstats.Float {
		return strconv.FormatFloat(v.Float, 'f', 2, 64)
	}
	return v.String()
}

// speedup computes copying's speedup factor over mark-sweep for one
// benchmark. It is undefined unless both backends reported a strictly
// positive numeric total-gc-time-ms.
func speedup(byBackend map[string]*gcstats.StatsBlock) (float64, bool) {
	const key = "total-gc-time-ms"
	ms, ok := lookupFloat(byBackend["mark-sweep"], key)
	if !ok || ms <= 0 {
		return 0, false
	}
	cp, ok := lookupFloat(byBackend["copying"], key)
	if !ok || cp <= 0 {
		return 0, false
	}
	return ms / cp, true
}

func lookupFloat(stats *gcstats.StatsBlock, key string) (float64, bool) {
	if stats == nil {
		return 0, false
	}
	v, ok := stats.Lookup(key)
	if !ok {
		return 0, false
	}
	return v.Float64()
}

// backendTitle converts a backend identifier to its column heading:
// each hyphen-separated word is capitalized, so "mark-sweep" becomes
// "Mark-Sweep".
func backendTitle(backend string) string {
	words := strings.Split(backend, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, "-")
}
