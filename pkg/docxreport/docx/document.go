// Package docx lays out WordprocessingML (.docx) documents, renders them
// through godocx and reads them back.
package docx

import (
	"fmt"
	"strings"
)

// Alignment is a paragraph justification value (ST_Jc).
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "both"
)

// Style IDs defined in the default document template.
const (
	StyleNormal    = "Normal"
	StyleTitle     = "Title"
	StyleTableGrid = "TableGrid"
)

// MaxHeadingLevel is the deepest heading style available.
const MaxHeadingLevel = 9

// HeadingStyle returns the style ID for a heading level.
// Level 0 is the document title; levels outside 0..9 are clamped.
func HeadingStyle(level int) string {
	if level <= 0 {
		return StyleTitle
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return fmt.Sprintf("Heading%d", level)
}

// Block is a body-level element: *Paragraph or *Table.
type Block interface {
	isBlock()
}

// Run is a contiguous piece of text inside a paragraph.
type Run struct {
	Text string
}

// Paragraph is a body paragraph.
type Paragraph struct {
	Style     string
	Alignment Alignment
	Runs      []*Run
}

func (*Paragraph) isBlock() {}

// AddRun appends a run with the given text.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Cell is a table cell holding plain text.
type Cell struct {
	Text string
}

// Row is a table row.
type Row struct {
	Cells []*Cell
}

// Table is a body table with a fixed column count.
type Table struct {
	Style string
	Cols  int
	Rows  []*Row
}

func (*Table) isBlock() {}

// AddRow appends an empty row and returns it.
func (t *Table) AddRow() *Row {
	row := &Row{Cells: make([]*Cell, t.Cols)}
	for i := range row.Cells {
		row.Cells[i] = &Cell{}
	}
	t.Rows = append(t.Rows, row)
	return row
}

// Cell returns the cell at row r, column c, or nil when out of range.
func (t *Table) Cell(r, c int) *Cell {
	if r < 0 || r >= len(t.Rows) || c < 0 || c >= t.Cols {
		return nil
	}
	return t.Rows[r].Cells[c]
}

// SetRow fills the cells of row r from values. Extra values are ignored.
func (t *Table) SetRow(r int, values ...string) {
	for c, v := range values {
		if cell := t.Cell(r, c); cell != nil {
			cell.Text = v
		}
	}
}

// Document is an in-memory word processing document.
type Document struct {
	blocks []Block
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// Blocks returns the body blocks in document order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// AddHeading appends a heading paragraph.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	p := d.AddParagraph(text)
	p.Style = HeadingStyle(level)
	return p
}

// AddParagraph appends a paragraph. An empty text yields a paragraph without runs.
func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.AddRun(text)
	}
	d.blocks = append(d.blocks, p)
	return p
}

// AddTable appends a table with rows empty rows of cols columns.
func (d *Document) AddTable(rows, cols int) *Table {
	if cols < 1 {
		cols = 1
	}
	t := &Table{Cols: cols}
	for i := 0; i < rows; i++ {
		t.AddRow()
	}
	d.blocks = append(d.blocks, t)
	return t
}

// CleanText drops characters XML 1.0 cannot carry: C0 controls other than
// tab, newline and carriage return, surrogates, U+FFFE and U+FFFF.
// Every renderer passes text through it so all outputs agree.
func CleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
