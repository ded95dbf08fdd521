package salary_test

import (
	"context"
	"testing"
	"time"

	"paydesk/internal/payrollapi"
	"paydesk/internal/payslip"
	"paydesk/internal/salary"
	"paydesk/internal/session"

	salaryerrors "paydesk/internal/salary/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDF(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(time.Hour)
	sess := readySession(t, store)

	gw := &fakeCalculator{calcFn: func(ctx context.Context, req payrollapi.CalculateRequest) (payslip.Payslip, error) {
		return slipFor(req), nil
	}}
	svc := salary.NewService(store, gw)

	// A payslip must exist before it can be rendered.
	_, _, err := svc.ExportPDF(ctx, sess.ID, "E1")
	assert.ErrorIs(t, err, salaryerrors.ErrPayslipNotComputed)

	_, err = svc.Calculate(ctx, sess.ID, salary.CalculateRequest{EmployeeID: "E1", DutyDone: 26})
	require.NoError(t, err)

	filename, data, err := svc.ExportPDF(ctx, sess.ID, "E1")
	assert.NoError(t, err)
	assert.Equal(t, "Asha_Verma_payslip.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))

	_, _, err = svc.ExportPDF(ctx, sess.ID, "E404")
	assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotInCompany)
}

func TestExportBatchPDF(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(time.Hour)
	sess := readySession(t, store)

	gw := &fakeCalculator{calcFn: func(ctx context.Context, req payrollapi.CalculateRequest) (payslip.Payslip, error) {
		return slipFor(req), nil
	}}
	svc := salary.NewService(store, gw)

	// Nothing computed yet: nothing to render.
	_, _, err := svc.ExportBatchPDF(ctx, sess.ID, "")
	assert.ErrorIs(t, err, salaryerrors.ErrPayslipNotComputed)

	_, err = svc.Calculate(ctx, sess.ID, salary.CalculateRequest{EmployeeID: "E1", DutyDone: 26})
	require.NoError(t, err)

	filename, data, err := svc.ExportBatchPDF(ctx, sess.ID, "")
	assert.NoError(t, err)
	assert.Equal(t, "all_employees_payslip.pdf", filename)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))

	// The filter can narrow the batch to employees without results.
	_, _, err = svc.ExportBatchPDF(ctx, sess.ID, "ravi")
	assert.ErrorIs(t, err, salaryerrors.ErrPayslipNotComputed)
}
