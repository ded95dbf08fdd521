package payslip

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is the canonical salary breakdown computed by the remote payroll
// service for one employee and one month. It is treated as immutable once
// received; the statutory arithmetic (pf, esic, lwf, bonus) lives server-side.
type Payslip struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Month      string `json:"month"`

	BasicPay  decimal.Decimal `json:"basic_pay"`
	Bonus     decimal.Decimal `json:"bonus"`
	Allowance decimal.Decimal `json:"allowance"`
	Gross     decimal.Decimal `json:"gross_salary"`

	PF              decimal.Decimal `json:"pf"`
	ESIC            decimal.Decimal `json:"esic"`
	Advance         decimal.Decimal `json:"advance"`
	Uniform         decimal.Decimal `json:"uniform"`
	Penalty         decimal.Decimal `json:"penalty"`
	LWF             decimal.Decimal `json:"lwf"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	NetSalary decimal.Decimal `json:"net_salary"`
}

// CheckConsistency verifies the arithmetic identities the remote service
// guarantees. It is a display-consistency guard only; a mismatch is logged,
// never fatal.
func (p Payslip) CheckConsistency() error {
	gross := p.BasicPay.Add(p.Bonus).Add(p.Allowance)
	if !gross.Equal(p.Gross) {
		return fmt.Errorf("gross mismatch: %s != basic+bonus+allowance %s", p.Gross, gross)
	}

	total := p.PF.Add(p.ESIC).Add(p.Advance).Add(p.Uniform).
		Add(p.Penalty).Add(p.LWF).Add(p.OtherDeductions)
	if !total.Equal(p.TotalDeductions) {
		return fmt.Errorf("total deductions mismatch: %s != %s", p.TotalDeductions, total)
	}

	if net := p.Gross.Sub(p.TotalDeductions); !net.Equal(p.NetSalary) {
		return fmt.Errorf("net mismatch: %s != gross-deductions %s", p.NetSalary, net)
	}

	return nil
}

const monthLayout = "01-2006"

var ErrInvalidMonth = errors.New("invalid month format, expected MM-YYYY")

// Month is a pay period in "MM-YYYY" form.
type Month struct {
	t time.Time
}

func ParseMonth(v string) (Month, error) {
	t, err := time.Parse(monthLayout, v)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{t: t}, nil
}

func (m Month) String() string {
	return m.t.Format(monthLayout)
}

func (m Month) IsZero() bool {
	return m.t.IsZero()
}

// Days returns the number of calendar days in the pay month.
func (m Month) Days() int {
	return m.t.AddDate(0, 1, -1).Day()
}
