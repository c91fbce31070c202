package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders rows under header: a boxed table for text output and a
// markdown table otherwise. Empty tables print "(none)".
func (r *Renderer) Table(header []string, rows [][]string) {
	if len(rows) == 0 {
		r.Println("(none)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
