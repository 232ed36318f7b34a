package output

import (
	"io"
	"strings"

	"github.com/hordu-ma/docxreport/pkg/docxreport/docx"
	"github.com/nao1215/markdown"
)

// WriteMarkdown renders the document body as GitHub-flavored Markdown.
// Title and Heading1 map to H1, Heading2 to H2 and deeper headings to H3.
func WriteMarkdown(w io.Writer, doc *docx.Document) error {
	md := markdown.NewMarkdown(w)

	for _, b := range doc.Blocks() {
		switch b := b.(type) {
		case *docx.Paragraph:
			writeParagraph(md, b)
		case *docx.Table:
			writeTable(md, b)
		}
	}

	return md.Build()
}

func writeParagraph(md *markdown.Markdown, p *docx.Paragraph) {
	text := docx.CleanText(p.Text())
	switch {
	case p.Style == docx.StyleTitle || p.Style == docx.HeadingStyle(1):
		md.H1(text)
	case p.Style == docx.HeadingStyle(2):
		md.H2(text)
	case strings.HasPrefix(p.Style, "Heading"):
		md.H3(text)
	default:
		md.PlainText(text)
	}
	md.PlainText("")
}

func writeTable(md *markdown.Markdown, t *docx.Table) {
	if len(t.Rows) == 0 {
		return
	}

	rows := make([][]string, 0, len(t.Rows)-1)
	for _, row := range t.Rows[1:] {
		rows = append(rows, rowText(row))
	}

	md.Table(markdown.TableSet{
		Header: rowText(t.Rows[0]),
		Rows:   rows,
	})
	md.PlainText("")
}

// cellEscaper keeps a cell on one line and its pipes out of the column syntax.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func rowText(row *docx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = cellEscaper.Replace(docx.CleanText(c.Text))
	}
	return cells
}
