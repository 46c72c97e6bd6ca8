// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcstats

import (
	"bytes"
	"strconv"
)

var resultMarker = []byte("Result: (")

// Parse extracts the result section from the full text of one
// benchmark log. It returns the parsed StatsBlock and whether a
// result section was found. A log without the "Result: (" marker is
// not an error; it simply has no statistics.
//
// The section runs from the marker to the last ')' in the remaining
// text, so nested pairs never truncate it; if no ')' follows the
// marker, the section runs to the end of the text. Within the
// section, each parenthesized sub-expression of the form
// "(key . value)" yields one statistic. Parse never fails and keeps
// no state between calls.
func Parse(data []byte) (*StatsBlock, bool) {
	i := bytes.Index(data, resultMarker)
	if i < 0 {
		return nil, false
	}
	sect := data[i+len(resultMarker):]
	if j := bytes.LastIndexByte(sect, ')'); j >= 0 {
		sect = sect[:j]
	}

	kvs := make(map[string]Value)
	for {
		open := bytes.IndexByte(sect, '(')
		if open < 0 {
			break
		}
		sect = sect[open+1:]
		end := bytes.IndexByte(sect, ')')
		if end < 0 {
			break
		}
		body := sect[:end]
		sect = sect[end+1:]
		// Keys and values contain no parentheses, so anything
		// before a nested '(' belongs to an enclosing
		// expression, not to this pair.
		if k := bytes.LastIndexByte(body, '('); k >= 0 {
			body = body[k+1:]
		}
		key, val, ok := splitPair(body)
		if !ok {
			continue
		}
		kvs[key] = parseValue(val)
	}
	return &StatsBlock{kvs}, true
}

// splitPair splits body at the first " . " separator (any
// whitespace is allowed around the dot) and trims both halves. It
// reports false if body has no separator or either half is empty.
func splitPair(body []byte) (key string, val []byte, ok bool) {
	for i := 1; i < len(body)-1; i++ {
		if body[i] == '.' && isSpace(body[i-1]) && isSpace(body[i+1]) {
			k := bytes.TrimSpace(body[:i-1])
			v := bytes.TrimSpace(body[i+2:])
			if len(k) == 0 || len(v) == 0 {
				return "", nil, false
			}
			return string(k), v, true
		}
	}
	return "", nil, false
}

func isSpace(c byte) bool {
	const spaces uint64 = 1<<'\t' | 1<<'\n' | 1<<'\v' | 1<<'\f' | 1<<'\r' | 1<<' '
	return c < 64 && (spaces>>c)&1 != 0
}

// parseValue infers the type of one statistic token. A token
// containing a decimal point or exponent marker is tried as a float,
// anything else as an integer, and conversion failure degrades to the
// string form rather than an error.
func parseValue(tok []byte) Value {
	s := string(tok)
	if bytes.ContainsAny(tok, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Value{Kind: Float, Float: f}
		}
		return Value{Kind: Str, Str: s}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Value{Kind: Int, Int: n}
	}
	return Value{Kind: Str, Str: s}
}
