package company

type CompanyResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	SheetColumns []SheetColumn      `json:"sheet_columns"`
	Templates    []TemplateResponse `json:"salary_templates"`
}

type TemplateResponse struct {
	Fields []TemplateFieldResponse `json:"fields"`
}

type TemplateFieldResponse struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}

func mapToResponse(c Company) CompanyResponse {
	resp := CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		SheetColumns: SheetColumns(c),
	}
	for _, t := range c.SalaryTemplates {
		tr := TemplateResponse{Fields: make([]TemplateFieldResponse, 0, len(t.Fields))}
		for _, f := range t.Fields {
			tr.Fields = append(tr.Fields, TemplateFieldResponse{
				Name:    f.Name,
				Value:   f.Value.StringFixed(2),
				Enabled: f.Enabled,
			})
		}
		resp.Templates = append(resp.Templates, tr)
	}
	return resp
}
