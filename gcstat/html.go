// Copyright 2024 The gcbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcstat

import (
	"bytes"
	"html/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(htmlFuncs).Parse(`{{if . -}}
<table class='gcbench'>
{{range $t := . -}}
<tbody>
<tr class='benchmark'><th colspan='{{len $t.Backends | inc}}'>{{$t.Benchmark}}
<tr><th>Metric{{range $t.Backends}}<th>{{title .}}{{end}}
{{range $t.Rows -}}
<tr><td>{{.Label}}{{range .Cells}}{{if eq . "N/A"}}<td class='na'>N/A{{else}}<td>{{.}}{{end}}{{end}}
{{end -}}
{{if $t.HasSpeedup -}}
<tr class='speedup'><td>Copying Speedup:<td colspan='{{len $t.Backends}}'>{{printf "%.1f" $t.Speedup}}x faster than Mark-Sweep
{{end -}}
</tbody>
{{end -}}
</table>
{{end -}}
`))

var htmlFuncs = template.FuncMap{
	"title": backendTitle,
	"inc":   func(n int) int { return n + 1 },
}

// FormatHTML appends an HTML formatting of the tables to buf. The
// page wrapper (doctype, styling) is the caller's concern; cmd/gcstat
// provides one.
func FormatHTML(buf *bytes.Buffer, tables []*Table) {
	err := htmlTemplate.Execute(buf, tables)
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
