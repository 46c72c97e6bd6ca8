// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcstat

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FormatCSV writes a machine-consumable rendering of the tables to w.
// The header is "benchmark,metric" followed by one column per
// backend. Each metric becomes one record per benchmark, with empty
// fields where the text report would show the NA sentinel. When the
// speedup is defined it is appended as a "copying-speedup" record
// whose value sits in the first backend column.
func FormatCSV(w io.Writer, tables []*Table) error {
	if len(tables) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)

	header := []string{"benchmark", "metric"}
	header = append(header, tables[0].Backends...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, t := range tables {
		for _, row := range t.Rows {
			rec := []string{t.Benchmark, row.Key}
			for _, cell := range row.Cells {
				if cell == NA {
					cell = ""
				}
				rec = append(rec, cell)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		if t.HasSpeedup {
			rec := make([]string, 2, len(header))
			rec[0] = t.Benchmark
			rec[1] = "copying-speedup"
			rec = append(rec, strconv.FormatFloat(t.Speedup, 'f', 1, 64))
			for len(rec) < len(header) {
				rec = append(rec, "")
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
