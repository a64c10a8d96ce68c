// Package report renders an aggregate HTML diagnostic report over a set
// of engine.Result values, mirroring the original's HTML_Message_Handler.
// This is a pure ambient output concern: no part of the core pipeline
// depends on it, and spec.md §4.11 names it as a driver-level collaborator
// rather than a tested invariant.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/btouchard/mlint/internal/diag"
	"github.com/btouchard/mlint/internal/engine"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Style report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
tr.error { background: #fdd; }
tr.warning { background: #ffe; }
tr.style { background: #fff; }
.summary { margin-bottom: 1em; }
</style>
</head>
<body>
<h1>Style report</h1>
<p class="summary">{{.FileCount}} file(s) analyzed, {{.TotalCount}} diagnostic(s).</p>
{{range .Files}}
<h2>{{.Filename}}</h2>
{{if .Rows}}
<table>
<tr><th>Line</th><th>Column</th><th>Severity</th><th>Message</th><th>Fixed</th></tr>
{{range .Rows}}
<tr class="{{.Severity}}">
<td>{{.Line}}</td>
<td>{{.Column}}</td>
<td>{{.Severity}}</td>
<td>{{.Message}}</td>
<td>{{if .Fixed}}yes{{else}}{{end}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No diagnostics.</p>
{{end}}
{{end}}
</body>
</html>
`

type row struct {
	Line     int
	Column   int
	Severity diag.Severity
	Message  string
	Fixed    bool
}

type fileSection struct {
	Filename string
	Rows     []row
}

type page struct {
	FileCount  int
	TotalCount int
	Files      []fileSection
}

var tmpl = template.Must(template.New("report").Parse(pageTemplate))

// WriteHTML renders results as a single static HTML page grouping
// diagnostics by file, in the order each Result lists them, with the
// severity shown on every row.
func WriteHTML(w io.Writer, results []engine.Result) error {
	p := page{FileCount: len(results)}
	for _, res := range results {
		section := fileSection{Filename: res.Filename}
		for _, d := range res.Diagnostics {
			section.Rows = append(section.Rows, row{
				Line:     d.Pos.Line,
				Column:   d.Pos.ColStart,
				Severity: d.Severity,
				Message:  d.Message,
				Fixed:    d.Fixed,
			})
			p.TotalCount++
		}
		p.Files = append(p.Files, section)
	}

	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("report: rendering: %w", err)
	}
	return nil
}
