// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcstats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Files reads benchmark runs from a results directory.
//
// Its API is modeled on bufio.Scanner. Every directory entry named
// "<backend>_<benchmark>.log" is read in full and parsed; entries
// whose names do not follow that convention, and logs without a
// result section, are skipped silently. The split is on the first
// underscore, so benchmark names may themselves contain underscores.
//
// Entries are visited in name order, which makes ingestion
// deterministic regardless of how the file system enumerates them.
type Files struct {
	// Dir is the results directory to read.
	Dir string

	// inputs is the sequence of remaining log files, or nil if
	// this Files has not started yet. Note that this distinguishes
	// nil from length 0.
	inputs []input

	run Run
	err error
}

type input struct {
	path      string
	backend   string
	benchmark string
}

// init does first-use initialization of f.
func (f *Files) init() {
	// Set f.inputs to a non-nil slice to indicate initialization
	// has happened.
	f.inputs = []input{}

	ents, err := os.ReadDir(f.Dir)
	if err != nil {
		f.err = err
		return
	}
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if !strings.HasSuffix(name, ".log") {
			continue
		}
		stem := strings.TrimSuffix(name, ".log")
		backend, benchmark, ok := strings.Cut(stem, "_")
		if !ok || backend == "" || benchmark == "" {
			// Not a benchmark log (e.g. summary.log).
			continue
		}
		f.inputs = append(f.inputs, input{filepath.Join(f.Dir, name), backend, benchmark})
	}
}

// Scan advances to the next benchmark run and reports whether one was
// read. The caller should use the Result method to get the run. If
// Scan exhausts the directory, or if an I/O error occurs, it returns
// false; the caller should then use the Err method to check for
// errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	if f.inputs == nil {
		f.init()
		if f.err != nil {
			return false
		}
	}

	for len(f.inputs) > 0 {
		inp := f.inputs[0]
		f.inputs = f.inputs[1:]

		data, err := os.ReadFile(inp.path)
		if err != nil {
			f.err = fmt.Errorf("reading %s: %w", inp.path, err)
			return false
		}
		stats, ok := Parse(data)
		if !ok || stats.Len() == 0 {
			// No result section, or an empty one. The log
			// contributes nothing.
			continue
		}
		f.run = Run{
			Benchmark: inp.benchmark,
			Backend:   inp.backend,
			Path:      inp.path,
			Stats:     stats,
		}
		return true
	}
	return false
}

// Result returns the run that was just read by Scan. The returned Run
// is only valid until the next call to Scan.
func (f *Files) Result() *Run {
	return &f.run
}

// Err returns the I/O error that stopped Scan, if any. A missing
// results directory is reported here, wrapping fs.ErrNotExist.
func (f *Files) Err() error {
	return f.err
}
