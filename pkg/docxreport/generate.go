package docxreport

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hordu-ma/docxreport/pkg/docxreport/docx"
	"github.com/hordu-ma/docxreport/pkg/docxreport/models"
	"github.com/hordu-ma/docxreport/pkg/docxreport/output"
	"github.com/sirupsen/logrus"
)

// Fixed report text.
const (
	IntroText       = "本报告由系统自动生成，包含了员工的详细信息及其参与的项目列表。"
	EmployeeHeading = "员工信息"
	ProjectsHeading = "项目列表"
	NoProjectsText  = "暂无项目信息。"
	FooterText      = "--- 报告结束 ---"
)

// Result describes a generated report.
type Result struct {
	// OutputPath is the written .docx path.
	OutputPath string
	// Size is the .docx size in bytes.
	Size int64
	// Blocks is the number of top-level body blocks.
	Blocks int
	// Projects is the number of project rows rendered.
	Projects int
}

// Load reads and decodes a report from a JSON file.
func Load(path string) (*models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewGenerateError(KindInputMissing, path, err)
		}
		return nil, NewGenerateError(KindInputRead, path, err)
	}

	report, err := models.Decode(data)
	if err != nil {
		return nil, NewGenerateError(KindInputMalformed, path, err)
	}
	return report, nil
}

// Build lays out a report as a document.
func Build(report *models.Report) *docx.Document {
	doc := docx.New()
	doc.AddHeading(report.TitleText(), 1)
	doc.AddParagraph(IntroText)
	doc.AddParagraph("")

	doc.AddHeading(EmployeeHeading, 2)
	for _, f := range report.Employee.Fields() {
		doc.AddParagraph(fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	doc.AddParagraph("")

	doc.AddHeading(ProjectsHeading, 2)
	if report.HasProjects() {
		table := doc.AddTable(1, len(models.ProjectColumns))
		table.Style = docx.StyleTableGrid
		table.SetRow(0, models.ProjectColumns...)
		for _, p := range report.Projects {
			table.AddRow()
			table.SetRow(len(table.Rows)-1, p.Row()...)
		}
	} else {
		doc.AddParagraph(NoProjectsText)
	}

	footer := doc.AddParagraph("")
	footer.AddRun(FooterText)
	footer.Alignment = docx.AlignCenter

	return doc
}

// Generate reads inputPath, renders the report and saves it to outputPath.
// Failures are logged and returned as *GenerateError.
func Generate(inputPath, outputPath string, opts Options) (*Result, error) {
	log := opts.logger().WithField("input", inputPath)

	report, err := Load(inputPath)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	doc := Build(report)

	if err := doc.Save(outputPath); err != nil {
		gerr := NewGenerateError(KindOutputWrite, outputPath, err)
		log.Error(gerr)
		return nil, gerr
	}

	result := &Result{
		OutputPath: outputPath,
		Blocks:     len(doc.Blocks()),
		Projects:   len(report.Projects),
	}
	if info, err := os.Stat(outputPath); err == nil {
		result.Size = info.Size()
	}

	log.WithFields(logrus.Fields{
		"blocks":   result.Blocks,
		"projects": result.Projects,
	}).Infof("DOCX report successfully generated at: %s (%s)", outputPath, humanize.Bytes(uint64(result.Size)))

	if opts.ShouldWriteMarkdown() {
		var buf bytes.Buffer
		err := output.WriteMarkdown(&buf, doc)
		if err == nil {
			err = os.WriteFile(opts.MarkdownPath, buf.Bytes(), 0644)
		}
		if err != nil {
			gerr := NewGenerateError(KindOutputWrite, opts.MarkdownPath, err)
			log.Error(gerr)
			return result, gerr
		}
		log.Infof("Markdown report written to: %s", opts.MarkdownPath)
	}

	if opts.ShouldWriteWorkbook() {
		if err := output.WriteWorkbook(opts.WorkbookPath, report); err != nil {
			gerr := NewGenerateError(KindOutputWrite, opts.WorkbookPath, err)
			log.Error(gerr)
			return result, gerr
		}
		log.Infof("Workbook written to: %s", opts.WorkbookPath)
	}

	return result, nil
}
