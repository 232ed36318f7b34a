package output

import (
	"github.com/hordu-ma/docxreport/pkg/docxreport/docx"
	"github.com/hordu-ma/docxreport/pkg/docxreport/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the companion workbook.
const (
	EmployeeSheet = "员工信息"
	ProjectSheet  = "项目列表"
)

// EmployeeHeader is the header row of the employee sheet.
var EmployeeHeader = []string{"字段", "值"}

// WriteWorkbook writes the employee profile and project list as an xlsx workbook.
func WriteWorkbook(path string, report *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), EmployeeSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ProjectSheet); err != nil {
		return err
	}

	employeeRows := [][]string{EmployeeHeader}
	for _, field := range report.Employee.Fields() {
		employeeRows = append(employeeRows, []string{field.Label, field.Value})
	}
	if err := writeGrid(f, EmployeeSheet, employeeRows); err != nil {
		return err
	}

	projectRows := [][]string{models.ProjectColumns}
	for _, p := range report.Projects {
		projectRows = append(projectRows, p.Row())
	}
	if err := writeGrid(f, ProjectSheet, projectRows); err != nil {
		return err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   docx.CleanText(report.TitleText()),
		Creator: "docxreport",
	}); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// writeGrid writes rows starting at A1, bolds the first row and borders every cell.
func writeGrid(f *excelize.File, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	cols := 0
	for rowIdx, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = docx.CleanText(v)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Border: border, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	if len(rows) > 1 {
		lastCell, _ := excelize.CoordinatesToCellName(cols, len(rows))
		if err := f.SetCellStyle(sheet, "A2", lastCell, bodyStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", lastCol, 24)
}
