package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/starford/sitemarks/internal/models"
)

func TestRows(t *testing.T) {
	list := []models.Bookmark{
		{SiteName: "Apple", SiteURL: "apple.com"},
		{SiteName: "Google", SiteURL: "www.google.com"},
	}
	rows := Rows(list)
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	want := Row{Position: 2, Index: 1, SiteName: "Google", VisitURL: "https://www.google.com"}
	if rows[1] != want {
		t.Errorf("row = %+v, want %+v", rows[1], want)
	}
	if rows[0].Position != 1 || rows[0].Index != 0 {
		t.Errorf("first row = %+v", rows[0])
	}
}

func TestRows_Empty(t *testing.T) {
	if rows := Rows(nil); rows == nil || len(rows) != 0 {
		t.Errorf("rows = %#v, want empty", rows)
	}
}

func TestTableBody(t *testing.T) {
	var buf bytes.Buffer
	err := TableBody(&buf, []models.Bookmark{{SiteName: "Apple", SiteURL: "apple.com"}})
	if err != nil {
		t.Fatalf("TableBody: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<td>1</td>",
		"<td>Apple</td>",
		`href="/visit/0"`,
		`action="/delete/0"`,
		"Visit",
		"Delete",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "<tr>") != 1 {
		t.Errorf("expected one row:\n%s", out)
	}
}

func TestTableBody_EscapesNames(t *testing.T) {
	var buf bytes.Buffer
	_ = TableBody(&buf, []models.Bookmark{{SiteName: "<script>alert(1)</script>", SiteURL: "x.com"}})
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("site name not escaped:\n%s", buf.String())
	}
}

func TestTableBody_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := TableBody(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<tr>") {
		t.Errorf("empty list rendered rows: %q", buf.String())
	}
}

func TestText(t *testing.T) {
	out := Text([]models.Bookmark{
		{SiteName: "Apple", SiteURL: "apple.com"},
		{SiteName: "Google", SiteURL: "google.com"},
	})
	for _, want := range []string{"Site Name", "Apple", "https://apple.com", "Google", "https://google.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("text table missing %q:\n%s", want, out)
		}
	}
}
