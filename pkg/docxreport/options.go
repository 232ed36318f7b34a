// Package docxreport renders employee report records into .docx documents.
package docxreport

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Paths used when the caller supplies none.
const (
	DefaultInputPath  = "data.json"
	DefaultOutputPath = "员工报告.docx"
)

// Options configures generation behavior.
type Options struct {
	// Logger receives status messages. If nil, messages are discarded.
	Logger logrus.FieldLogger
	// MarkdownPath, when set, also renders the document as Markdown to this path.
	MarkdownPath string
	// WorkbookPath, when set, also writes the employee and project data as an xlsx workbook.
	WorkbookPath string
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldWriteMarkdown returns whether a Markdown companion is requested.
func (o Options) ShouldWriteMarkdown() bool {
	return o.MarkdownPath != ""
}

// ShouldWriteWorkbook returns whether an xlsx companion is requested.
func (o Options) ShouldWriteWorkbook() bool {
	return o.WorkbookPath != ""
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
