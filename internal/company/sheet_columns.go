package company

import "strconv"

// The editable salary sheet always starts with these fixed columns; template
// fields only ever add to them.
var fixedColumns = []SheetColumn{
	{Key: "name", Label: "Name"},
	{Key: "designation", Label: "Designation"},
	{Key: "department", Label: "Department"},
	{Key: "salary", Label: "Salary"},
}

type SheetColumn struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Editable bool   `json:"editable"`
}

// SheetColumns interprets the company's salary templates into the column
// contract for the editable sheet. Only the first template is consulted: the
// fixed base columns, then one editable numeric column per field marked
// enabled, labeled with the field's name. A company with no templates gets
// the fixed columns only.
func SheetColumns(c Company) []SheetColumn {
	cols := make([]SheetColumn, len(fixedColumns))
	copy(cols, fixedColumns)

	if len(c.SalaryTemplates) == 0 {
		return cols
	}

	for _, f := range c.SalaryTemplates[0].Fields {
		if !f.Enabled {
			continue
		}
		cols = append(cols, SheetColumn{Key: f.Name, Label: f.Name, Editable: true})
	}
	return cols
}

// CoerceCell parses user input for an editable sheet cell. Non-numeric input
// reverts the cell to null rather than raising an error.
func CoerceCell(input string) *float64 {
	if input == "" {
		return nil
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return nil
	}
	return &v
}
