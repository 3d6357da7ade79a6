package project

import (
	"civic-sync"
	"civic-sync/currency"
	"fmt"
	"github.com/jedib0t/go-pretty/v6/table"
	"io"
)

// RenderTable writes projects to w as a table.
func RenderTable(w io.Writer, projects []civic.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects to display.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Title", "Location", "Status", "Budget"})
	for _, p := range projects {
		t.AppendRow(table.Row{
			p.ID,
			p.Title,
			p.Location,
			string(p.Status),
			currency.Format(p.Budget()),
		})
	}
	t.Render()
}
