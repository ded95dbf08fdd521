package salary_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"paydesk/internal/company"
	"paydesk/internal/salary"
	"paydesk/internal/session"

	sessionerrors "paydesk/internal/session/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportSheet(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(time.Hour)

	sess := store.Create()
	sess.SelectCompany(company.Company{
		ID:   "C1",
		Name: "Acme Facility Services",
		SalaryTemplates: []company.SalaryTemplate{
			{Fields: []company.TemplateField{
				{Name: "bonus", Value: decimal.NewFromInt(500), Enabled: true},
				{Name: "uniformCharge", Value: decimal.NewFromInt(250), Enabled: false},
			}},
		},
	}, salaryRoster())

	svc := salary.NewService(store, &fakeCalculator{})

	filename, data, err := svc.ExportSheet(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "salary_sheet.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Salary Sheet")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Designation", "Department", "Salary", "bonus"}, rows[0])
	assert.Equal(t, "Asha Verma", rows[1][0])
	assert.Equal(t, "20000", rows[1][3])
	// Enabled template field is pre-filled with its configured default.
	assert.Equal(t, "500", rows[1][4])
}

func TestExportSheet_MonthInFilename(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(time.Hour)
	sess := readySession(t, store)

	svc := salary.NewService(store, &fakeCalculator{})

	filename, _, err := svc.ExportSheet(ctx, sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, "salary_sheet_01-2024.xlsx", filename)
}

func TestCoerceSheetCell(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(time.Hour)

	sess := store.Create()
	sess.SelectCompany(company.Company{
		ID: "C1",
		SalaryTemplates: []company.SalaryTemplate{
			{Fields: []company.TemplateField{
				{Name: "bonus", Value: decimal.NewFromInt(500), Enabled: true},
			}},
		},
	}, salaryRoster())

	svc := salary.NewService(store, &fakeCalculator{})

	resp, err := svc.CoerceSheetCell(ctx, sess.ID, salary.SheetCellRequest{Column: "bonus", Value: "1250.50"})
	require.NoError(t, err)
	require.NotNil(t, resp.Value)
	assert.InDelta(t, 1250.50, *resp.Value, 0.0001)

	// Non-numeric input reverts the cell to null instead of erroring.
	resp, err = svc.CoerceSheetCell(ctx, sess.ID, salary.SheetCellRequest{Column: "bonus", Value: "abc"})
	require.NoError(t, err)
	assert.Nil(t, resp.Value)

	// Fixed columns are not editable.
	_, err = svc.CoerceSheetCell(ctx, sess.ID, salary.SheetCellRequest{Column: "name", Value: "1"})
	assert.Error(t, err)
}

func TestExportSheet_NoCompany(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(time.Hour)
	sess := store.Create()

	svc := salary.NewService(store, &fakeCalculator{})

	_, _, err := svc.ExportSheet(ctx, sess.ID)
	assert.ErrorIs(t, err, sessionerrors.ErrCompanyNotSelected)
}
