package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// XML namespaces, relationship types and part names read from a package.
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsPkgRels = "http://schemas.openxmlformats.org/package/2006/relationships"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"

	partRootRels = "_rels/.rels"
	partDocument = "word/document.xml"
)

// ErrNoDocumentPart indicates the package has no main document part.
var ErrNoDocumentPart = errors.New("package has no word document part")

// BlockKind identifies an outline block.
type BlockKind string

const (
	KindParagraph BlockKind = "paragraph"
	KindTable     BlockKind = "table"
)

// OutlineBlock is the textual view of one body block.
type OutlineBlock struct {
	// Kind is paragraph or table.
	Kind BlockKind `json:"kind"`
	// Style is the paragraph or table style ID.
	Style string `json:"style,omitempty"`
	// Alignment is the paragraph justification.
	Alignment Alignment `json:"alignment,omitempty"`
	// Text is the paragraph text (line breaks as "\n", tabs as "\t").
	Text string `json:"text,omitempty"`
	// Runs is the number of runs in the paragraph.
	Runs int `json:"runs,omitempty"`
	// Rows holds cell text for tables.
	Rows [][]string `json:"rows,omitempty"`
}

// Outline is the textual content of a document, independent of its binary form.
type Outline struct {
	// Title is the text of the first Title or Heading1 paragraph.
	Title  string         `json:"title,omitempty"`
	Blocks []OutlineBlock `json:"blocks"`
}

// Paragraphs returns the paragraph blocks only.
func (o *Outline) Paragraphs() []OutlineBlock {
	var out []OutlineBlock
	for _, b := range o.Blocks {
		if b.Kind == KindParagraph {
			out = append(out, b)
		}
	}
	return out
}

// Tables returns the table blocks only.
func (o *Outline) Tables() []OutlineBlock {
	var out []OutlineBlock
	for _, b := range o.Blocks {
		if b.Kind == KindTable {
			out = append(out, b)
		}
	}
	return out
}

// Outline returns the textual view of an in-memory document.
func (d *Document) Outline() *Outline {
	o := &Outline{Blocks: make([]OutlineBlock, 0, len(d.blocks))}
	for _, b := range d.blocks {
		switch b := b.(type) {
		case *Paragraph:
			o.Blocks = append(o.Blocks, OutlineBlock{
				Kind:      KindParagraph,
				Style:     b.Style,
				Alignment: b.Alignment,
				Text:      b.Text(),
				Runs:      len(b.Runs),
			})
		case *Table:
			rows := make([][]string, len(b.Rows))
			for i, row := range b.Rows {
				rows[i] = make([]string, len(row.Cells))
				for j, cell := range row.Cells {
					rows[i][j] = cell.Text
				}
			}
			o.Blocks = append(o.Blocks, OutlineBlock{Kind: KindTable, Style: b.Style, Rows: rows})
		}
	}
	o.Title = titleOf(o.Blocks)
	return o
}

func titleOf(blocks []OutlineBlock) string {
	for _, b := range blocks {
		if b.Kind == KindParagraph && (b.Style == StyleTitle || b.Style == HeadingStyle(1)) {
			return b.Text
		}
	}
	return ""
}

// Read opens a .docx file and returns its outline.
func Read(path string) (*Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads a .docx package from memory and returns its outline.
func Parse(data []byte) (*Outline, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}

	docPath := partDocument
	if relsXML, err := readZipFile(r, partRootRels); err == nil && relsXML != nil {
		if target := findRelationship(relsXML, relOfficeDocument); target != "" {
			docPath = resolveRelativePath(target)
		}
	}

	docXML, err := readZipFile(r, docPath)
	if err != nil {
		return nil, err
	}
	if docXML == nil {
		return nil, ErrNoDocumentPart
	}

	root, err := xmlquery.Parse(bytes.NewReader(docXML))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", docPath, err)
	}

	o := &Outline{Blocks: []OutlineBlock{}}
	if body := xmlquery.FindOne(root, "//*[local-name()='body']"); body != nil {
		for n := body.FirstChild; n != nil; n = n.NextSibling {
			if n.Type != xmlquery.ElementNode {
				continue
			}
			switch n.Data {
			case "p":
				o.Blocks = append(o.Blocks, outlineParagraph(n))
			case "tbl":
				o.Blocks = append(o.Blocks, outlineTable(n))
			}
		}
	}

	o.Title = titleOf(o.Blocks)
	return o, nil
}

func outlineParagraph(p *xmlquery.Node) OutlineBlock {
	block := OutlineBlock{Kind: KindParagraph}
	if style := xmlquery.FindOne(p, "./*[local-name()='pPr']/*[local-name()='pStyle']"); style != nil {
		block.Style = attrValue(style, "val")
	}
	if jc := xmlquery.FindOne(p, "./*[local-name()='pPr']/*[local-name()='jc']"); jc != nil {
		block.Alignment = Alignment(attrValue(jc, "val"))
	}

	var sb strings.Builder
	for n := p.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode && n.Data == "r" {
			block.Runs++
			writeRunText(&sb, n)
		}
	}
	block.Text = sb.String()
	return block
}

func outlineTable(tbl *xmlquery.Node) OutlineBlock {
	block := OutlineBlock{Kind: KindTable}
	if style := xmlquery.FindOne(tbl, "./*[local-name()='tblPr']/*[local-name()='tblStyle']"); style != nil {
		block.Style = attrValue(style, "val")
	}

	for _, tr := range xmlquery.Find(tbl, "./*[local-name()='tr']") {
		var row []string
		for _, tc := range xmlquery.Find(tr, "./*[local-name()='tc']") {
			var paras []string
			for _, p := range xmlquery.Find(tc, "./*[local-name()='p']") {
				var sb strings.Builder
				for _, r := range xmlquery.Find(p, "./*[local-name()='r']") {
					writeRunText(&sb, r)
				}
				paras = append(paras, sb.String())
			}
			row = append(row, strings.Join(paras, "\n"))
		}
		block.Rows = append(block.Rows, row)
	}
	return block
}

// writeRunText appends the text of a w:r element.
func writeRunText(sb *strings.Builder, r *xmlquery.Node) {
	for n := r.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		switch n.Data {
		case "t":
			sb.WriteString(n.InnerText())
		case "br", "cr":
			sb.WriteString("\n")
		case "tab":
			sb.WriteString("\t")
		}
	}
}

func attrValue(n *xmlquery.Node, local string) string {
	for _, attr := range n.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// readZipFile returns the content of a package part, or nil if it is absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// findRelationship returns the target of the first relationship of relType.
func findRelationship(data []byte, relType string) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var typ, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Type":
					typ = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if typ == relType {
				return target
			}
		}
	}

	return ""
}

// resolveRelativePath turns a package-root relationship target into a part name.
func resolveRelativePath(target string) string {
	target = strings.TrimPrefix(target, "/")
	for strings.HasPrefix(target, "./") {
		target = strings.TrimPrefix(target, "./")
	}
	return target
}
