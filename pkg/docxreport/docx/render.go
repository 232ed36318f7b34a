package docx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	wml "github.com/gomutex/godocx/docx"
	"github.com/google/uuid"
)

// renameFile moves the finished temporary package into place.
var renameFile = os.Rename

// render builds a godocx document from the default template holding d's blocks.
func (d *Document) render() (*wml.RootDoc, error) {
	root, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	for _, b := range d.blocks {
		switch b := b.(type) {
		case *Paragraph:
			renderParagraph(root, b)
		case *Table:
			renderTable(root, b)
		}
	}
	return root, nil
}

func renderParagraph(root *wml.RootDoc, p *Paragraph) {
	para := root.AddEmptyParagraph()
	if p.Style != "" {
		para.Style(p.Style)
	}

	switch p.Alignment {
	case AlignLeft:
		para.Justification("left")
	case AlignCenter:
		para.Justification("center")
	case AlignRight:
		para.Justification("right")
	case AlignJustify:
		para.Justification("both")
	}

	for _, r := range p.Runs {
		para.AddText(CleanText(r.Text))
	}
}

func renderTable(root *wml.RootDoc, t *Table) {
	tbl := root.AddTable()
	if t.Style != "" {
		tbl.Style(t.Style)
	}
	for _, row := range t.Rows {
		r := tbl.AddRow()
		for _, cell := range row.Cells {
			r.AddCell().AddParagraph(CleanText(cell.Text))
		}
	}
}

// Save writes the document to path. The package is written to a temporary
// file in the same directory and renamed into place, so a failed save leaves
// any existing file at path untouched. A replaced file keeps its permissions;
// a new file gets the process umask applied to 0666.
func (d *Document) Save(path string) error {
	root, err := d.render()
	if err != nil {
		return err
	}

	tmpName := filepath.Join(filepath.Dir(path), ".docxreport-"+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := root.SaveTo(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing package: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
			os.Remove(tmpName)
			return err
		}
	}

	if err := renameFile(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
