package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hordu-ma/docxreport/pkg/docxreport/docx"
)

func TestWriteMarkdown(t *testing.T) {
	doc := docx.New()
	doc.AddHeading("月度报告", 1)
	doc.AddParagraph("intro")
	doc.AddHeading("项目列表", 2)
	doc.AddHeading("细节", 3)
	tbl := doc.AddTable(1, 3)
	tbl.SetRow(0, "项目名称", "状态", "项目负责人")
	tbl.AddRow()
	tbl.SetRow(1, "Alpha", "进行中", "line1\nline2")
	footer := doc.AddParagraph("")
	footer.AddRun("--- 报告结束 ---")
	footer.Alignment = docx.AlignCenter

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, doc); err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}
	got := buf.String()

	tests := []string{
		"# 月度报告",
		"intro",
		"## 项目列表",
		"### 细节",
		"项目名称",
		"Alpha",
		"line1 line2",
		"--- 报告结束 ---",
	}
	for _, want := range tests {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown missing %q:\n%s", want, got)
		}
	}

	if strings.Index(got, "# 月度报告") > strings.Index(got, "Alpha") {
		t.Error("Expected heading before table rows")
	}
}

func TestWriteMarkdownTableCellEscaping(t *testing.T) {
	doc := docx.New()
	tbl := doc.AddTable(2, 3)
	tbl.SetRow(0, "项目名称", "状态", "项目负责人")
	tbl.SetRow(1, "a|b", "x", "N/A")

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, doc); err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}

	var row string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "a\\|b") {
			row = line
		}
	}
	if row == "" {
		t.Fatalf("Expected escaped pipe in output:\n%s", buf.String())
	}
	if got := strings.Count(row, "|") - strings.Count(row, `\|`); got != 4 {
		t.Errorf("Expected 3 columns (4 separators), got %d in %q", got, row)
	}
}

func TestWriteMarkdownDropsInvalidXMLChars(t *testing.T) {
	doc := docx.New()
	doc.AddParagraph("a\u0001b")
	tbl := doc.AddTable(1, 1)
	tbl.SetRow(0, "x\u0000y")

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, doc); err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}
	got := buf.String()
	if strings.ContainsAny(got, "\u0000\u0001") {
		t.Errorf("Control characters leaked into Markdown: %q", got)
	}
	if !strings.Contains(got, "ab") || !strings.Contains(got, "xy") {
		t.Errorf("Expected cleaned text, got %q", got)
	}
}

func TestWriteMarkdownEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, docx.New()); err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "" {
		t.Errorf("Expected empty output, got %q", buf.String())
	}
}

func TestToJSON(t *testing.T) {
	doc := docx.New()
	doc.AddHeading("T", 1)

	compact, err := ToJSON(doc.Outline(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(compact), `"style":"Heading1"`) {
		t.Errorf("Unexpected JSON: %s", compact)
	}

	pretty, err := ToJSON(doc.Outline(), true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Errorf("Expected indented JSON: %s", pretty)
	}
}
