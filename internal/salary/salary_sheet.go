package salary

import (
	"context"
	"fmt"

	"paydesk/internal/company"
	"paydesk/internal/shared/apperror"

	sessionerrors "paydesk/internal/session/errors"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Salary Sheet"

// ExportSheet builds the spreadsheet-style editable salary sheet. Column
// layout comes from the selected company's first salary template: the fixed
// base columns plus one editable column per enabled template field.
func (s *service) ExportSheet(ctx context.Context, sessionID string) (string, []byte, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", nil, err
	}

	comp, ok := sess.Company()
	if !ok {
		return "", nil, sessionerrors.ErrCompanyNotSelected
	}

	columns := company.SheetColumns(comp)
	employees := sess.Employees("")

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return "", nil, err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.Label); err != nil {
			return "", nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(columns), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)
	_ = f.SetRowHeight(sheetName, 1, 22)

	// Template defaults for the editable columns, so the sheet opens with
	// the company's configured values instead of blanks.
	defaults := templateDefaults(comp)

	for rowIdx, e := range employees {
		row := rowIdx + 2
		values := []any{e.FullName(), e.Designation, e.Department, e.BaseSalary.InexactFloat64()}
		for _, col := range columns[len(values):] {
			if v, ok := defaults[col.Key]; ok {
				values = append(values, v)
			} else {
				values = append(values, nil)
			}
		}
		for i, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return "", nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return "", nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}

	filename := "salary_sheet.xlsx"
	if month, ok := sess.Month(); ok {
		filename = fmt.Sprintf("salary_sheet_%s.xlsx", month)
	}
	return filename, buf.Bytes(), nil
}

// CoerceSheetCell validates one edited cell of the salary sheet. The column
// must be an editable one for the selected company; non-numeric input comes
// back as null so the client reverts the cell instead of erroring.
func (s *service) CoerceSheetCell(ctx context.Context, sessionID string, req SheetCellRequest) (SheetCellResponse, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return SheetCellResponse{}, err
	}

	comp, ok := sess.Company()
	if !ok {
		return SheetCellResponse{}, sessionerrors.ErrCompanyNotSelected
	}

	editable := false
	for _, col := range company.SheetColumns(comp) {
		if col.Key == req.Column && col.Editable {
			editable = true
			break
		}
	}
	if !editable {
		return SheetCellResponse{}, apperror.InvalidField("column", "is not an editable sheet column")
	}

	return SheetCellResponse{
		Column: req.Column,
		Value:  company.CoerceCell(req.Value),
	}, nil
}

func templateDefaults(comp company.Company) map[string]float64 {
	defaults := make(map[string]float64)
	if len(comp.SalaryTemplates) == 0 {
		return defaults
	}
	for _, field := range comp.SalaryTemplates[0].Fields {
		if field.Enabled {
			defaults[field.Name] = field.Value.InexactFloat64()
		}
	}
	return defaults
}
