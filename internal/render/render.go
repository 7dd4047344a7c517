// Package render turns the bookmark list into display rows: an HTML table
// body for the page and a plain table for the terminal.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/models"
)

// Row is one rendered table line.
type Row struct {
	Position int    `json:"position"` // 1-based, as displayed
	Index    int    `json:"index"`    // 0-based, bound to the delete action
	SiteName string `json:"siteName"`
	VisitURL string `json:"visitURL"`
}

// Rows builds one row per bookmark in list order.
func Rows(list []models.Bookmark) []Row {
	rows := make([]Row, len(list))
	for i, b := range list {
		rows[i] = Row{
			Position: i + 1,
			Index:    i,
			SiteName: b.SiteName,
			VisitURL: bookmarks.VisitURL(b.SiteURL),
		}
	}
	return rows
}

const tableBodyHTML = `{{range .}}<tr>
	<td>{{.Position}}</td>
	<td>{{.SiteName}}</td>
	<td><a class="btn btn-success" href="/visit/{{.Index}}" target="_blank" rel="noopener"><i class="fa-solid fa-eye pe-2"></i>Visit</a></td>
	<td><form method="post" action="/delete/{{.Index}}"><button type="submit" class="btn btn-danger"><i class="fa-solid fa-trash-can pe-2"></i>Delete</button></form></td>
</tr>
{{end}}`

var tableBodyTmpl = template.Must(template.New("tbody").Parse(tableBodyHTML))

// TableBody writes the <tr> rows for list, replacing nothing incrementally.
func TableBody(w io.Writer, list []models.Bookmark) error {
	if err := tableBodyTmpl.Execute(w, Rows(list)); err != nil {
		return fmt.Errorf("render: table body: %w", err)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Text renders list as a bordered terminal table.
func Text(list []models.Bookmark) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Site Name", "Visit").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range Rows(list) {
		t.Row(strconv.Itoa(r.Position), r.SiteName, r.VisitURL)
	}
	return t.String()
}
