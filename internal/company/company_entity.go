package company

import (
	"github.com/shopspring/decimal"

	"paydesk/internal/payrollapi"
)

// Company as used by the workflow: name plus the ordered salary templates
// that drive the editable sheet layout.
type Company struct {
	ID              string
	Name            string
	SalaryTemplates []SalaryTemplate
}

type SalaryTemplate struct {
	Fields []TemplateField
}

type TemplateField struct {
	Name    string
	Value   decimal.Decimal
	Enabled bool
}

func fromWire(c payrollapi.Company) Company {
	out := Company{ID: c.ID, Name: c.Name}
	for _, t := range c.SalaryTemplates {
		st := SalaryTemplate{Fields: make([]TemplateField, 0, len(t.Fields))}
		for _, f := range t.Fields {
			st.Fields = append(st.Fields, TemplateField{
				Name:    f.Name,
				Value:   f.Value,
				Enabled: f.Enabled,
			})
		}
		out.SalaryTemplates = append(out.SalaryTemplates, st)
	}
	return out
}
