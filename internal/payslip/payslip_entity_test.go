package payslip_test

import (
	"testing"

	"paydesk/internal/payslip"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func validSlip() payslip.Payslip {
	return payslip.Payslip{
		EmployeeID:      "E1",
		CompanyID:       "C1",
		Month:           "01-2024",
		BasicPay:        dec("20000.00"),
		Bonus:           dec("1666.00"),
		Allowance:       dec("500.00"),
		Gross:           dec("22166.00"),
		PF:              dec("2400.00"),
		ESIC:            dec("166.25"),
		Advance:         dec("1000.00"),
		Uniform:         dec("250.00"),
		Penalty:         dec("0.00"),
		LWF:             dec("10.00"),
		OtherDeductions: dec("100.00"),
		TotalDeductions: dec("3926.25"),
		NetSalary:       dec("18239.75"),
	}
}

func TestPayslip_CheckConsistency(t *testing.T) {
	assert.NoError(t, validSlip().CheckConsistency())

	t.Run("gross mismatch", func(t *testing.T) {
		slip := validSlip()
		slip.Gross = dec("99999.00")
		err := slip.CheckConsistency()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "gross mismatch")
	})

	t.Run("deduction mismatch", func(t *testing.T) {
		slip := validSlip()
		slip.TotalDeductions = dec("1.00")
		assert.Error(t, slip.CheckConsistency())
	})

	t.Run("net mismatch", func(t *testing.T) {
		slip := validSlip()
		slip.NetSalary = dec("0.01")
		assert.Error(t, slip.CheckConsistency())
	})
}

func TestParseMonth(t *testing.T) {
	m, err := payslip.ParseMonth("02-2024")
	assert.NoError(t, err)
	assert.Equal(t, "02-2024", m.String())
	assert.Equal(t, 29, m.Days())

	_, err = payslip.ParseMonth("2024-02")
	assert.ErrorIs(t, err, payslip.ErrInvalidMonth)

	_, err = payslip.ParseMonth("13-2024")
	assert.ErrorIs(t, err, payslip.ErrInvalidMonth)

	_, err = payslip.ParseMonth("")
	assert.ErrorIs(t, err, payslip.ErrInvalidMonth)
}
