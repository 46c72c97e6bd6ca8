// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcstats parses the statistics blocks emitted by the
// Minimalisp GC benchmark harness.
//
// A benchmark log is free-form text containing at most one result
// section of the form
//
//	Result: ( (collections . 12) (total-gc-time-ms . 48.25) ... )
//
// The parser is deliberately lenient: logs without a result section
// contribute nothing, and tokens that fail numeric conversion are kept
// as strings. This package never reports a parse failure; a results
// directory may contain unrelated or partial logs, and those simply
// produce less data.
package gcstats

import (
	"sort"
	"strconv"
)

// A Kind identifies the dynamic type of a Value.
type Kind int

const (
	// Int is a value that parsed as a signed integer.
	Int Kind = iota
	// Float is a value that parsed as a floating-point number.
	Float
	// Str is a value that did not parse as a number.
	Str
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Str:
		return "Str"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Value is a single statistic from a result section. Its type is
// inferred per token when the log is parsed, so consumers must switch
// on Kind rather than assume a statistic is numeric.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
}

// String returns the default textual form of v: integers in base 10,
// floats in their shortest exact representation, and strings verbatim.
func (v Value) String() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return v.Str
}

// Float64 returns the numeric value of v and whether v is numeric.
// Int values are converted to float64.
func (v Value) Float64() (float64, bool) {
	switch v.Kind {
	case Int:
		return float64(v.Int), true
	case Float:
		return v.Float, true
	}
	return 0, false
}

// A StatsBlock is the set of statistics parsed from one result
// section. It maps statistic names (kebab-case tokens such as
// "total-gc-time-ms") to Values. A StatsBlock is immutable once
// returned by Parse; if the section named a key twice, the last
// occurrence won.
type StatsBlock struct {
	kvs map[string]Value
}

// Lookup returns the value of the named statistic and whether the
// block contains it.
func (b *StatsBlock) Lookup(key string) (Value, bool) {
	v, ok := b.kvs[key]
	return v, ok
}

// Keys returns the statistic names in the block, sorted.
func (b *StatsBlock) Keys() []string {
	keys := make([]string, 0, len(b.kvs))
	for k := range b.kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of statistics in the block.
func (b *StatsBlock) Len() int {
	return len(b.kvs)
}

// A Run is one benchmark execution recovered from a results
// directory: the parsed statistics of a single (benchmark, backend)
// pair.
type Run struct {
	// Benchmark is the workload name, from the log file name.
	Benchmark string

	// Backend is the GC implementation under test, from the log
	// file name.
	Backend string

	// Path is the log file the run was read from. It is purely
	// diagnostic.
	Path string

	// Stats holds the parsed result section. It is never nil and
	// never empty.
	Stats *StatsBlock
}
