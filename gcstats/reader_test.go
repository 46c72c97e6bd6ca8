// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcstats

import (
	"reflect"
	"testing"
)

// blockMap flattens b for comparison with reflect.DeepEqual.
func blockMap(b *StatsBlock) map[string]Value {
	m := make(map[string]Value)
	for _, k := range b.Keys() {
		v, _ := b.Lookup(k)
		m[k] = v
	}
	return m
}

func TestParse(t *testing.T) {
	test := func(data string, want map[string]Value) {
		t.Helper()
		b, ok := Parse([]byte(data))
		if !ok {
			t.Errorf("Parse(%q) found no result section", data)
			return
		}
		if got := blockMap(b); !reflect.DeepEqual(got, want) {
			t.Errorf("Parse(%q) = %v, want %v", data, got, want)
		}
	}

	// Basic block.
	test("Result: ( (collections . 3) )",
		map[string]Value{"collections": {Kind: Int, Int: 3}})

	// Several pairs with surrounding noise.
	test("starting benchmark\nheap grew\nResult: ( (collections . 12) (total-gc-time-ms . 48.25) (phase . full) )\ndone\n",
		map[string]Value{
			"collections":      {Kind: Int, Int: 12},
			"total-gc-time-ms": {Kind: Float, Float: 48.25},
			"phase":            {Kind: Str, Str: "full"},
		})

	// Extra whitespace around keys, values, and the dot.
	test("Result: ( ( max-pause-ms   .   7.5 ) )",
		map[string]Value{"max-pause-ms": {Kind: Float, Float: 7.5}})

	// Duplicate key: last occurrence wins.
	test("Result: ( (collections . 1) (collections . 2) )",
		map[string]Value{"collections": {Kind: Int, Int: 2}})

	// Negative numbers.
	test("Result: ( (drift . -4) (skew . -0.5) )",
		map[string]Value{
			"drift": {Kind: Int, Int: -4},
			"skew":  {Kind: Float, Float: -0.5},
		})

	// Malformed sub-expressions are skipped, well-formed ones kept.
	test("Result: ( (collections . 3) (no-separator) ( . 9) (empty . ) )",
		map[string]Value{"collections": {Kind: Int, Int: 3}})

	// Trailing parenthesized text after the section is harmless:
	// the section extends to the last ')' but junk bodies parse to
	// nothing.
	test("Result: ( (collections . 3) )\nshutdown (cleanup done)\n",
		map[string]Value{"collections": {Kind: Int, Int: 3}})

	// No closing paren at all: the section runs to end of text.
	test("Result: ( (collections . 3",
		map[string]Value{})
}

func TestParseTyping(t *testing.T) {
	test := func(tok string, want Value) {
		t.Helper()
		b, ok := Parse([]byte("Result: ( (k . " + tok + ") )"))
		if !ok {
			t.Fatalf("Parse found no result section for %q", tok)
		}
		got, ok := b.Lookup("k")
		if !ok {
			t.Errorf("value %q did not parse to a pair", tok)
			return
		}
		if got != want {
			t.Errorf("value %q = %+v, want %+v", tok, got, want)
		}
	}

	test("3", Value{Kind: Int, Int: 3})
	test("3.5", Value{Kind: Float, Float: 3.5})
	test("3.5e2", Value{Kind: Float, Float: 350})
	test("1E3", Value{Kind: Float, Float: 1000})
	test("abc", Value{Kind: Str, Str: "abc"})
	// A dotted token that is not a number stays a string; there is
	// no second attempt at integer parsing.
	test("1.2.3", Value{Kind: Str, Str: "1.2.3"})
	// An exponent marker alone does not make a number.
	test("12e", Value{Kind: Str, Str: "12e"})
	test("enabled", Value{Kind: Str, Str: "enabled"})
	// Too large for int64 degrades to a string, not a failure.
	test("99999999999999999999", Value{Kind: Str, Str: "99999999999999999999"})
}

func TestParseNoMarker(t *testing.T) {
	for _, data := range []string{
		"",
		"benchmark crashed before reporting\n",
		"result: ( (collections . 3) )", // marker is case-sensitive
		"Results: ( (collections . 3) )",
	} {
		if b, ok := Parse([]byte(data)); ok {
			t.Errorf("Parse(%q) = %v, want no result", data, blockMap(b))
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	data := []byte("Result: ( (collections . 12) (total-gc-time-ms . 48.25) (phase . full) )")
	b1, ok1 := Parse(data)
	b2, ok2 := Parse(data)
	if !ok1 || !ok2 {
		t.Fatal("Parse found no result section")
	}
	if !reflect.DeepEqual(blockMap(b1), blockMap(b2)) {
		t.Errorf("re-parsing differed: %v vs %v", blockMap(b1), blockMap(b2))
	}
}
