package session

import (
	"sync"
	"time"

	"paydesk/internal/company"
	"paydesk/internal/employee"
	"paydesk/internal/payslip"

	sessionerrors "paydesk/internal/session/errors"
)

type State string

const (
	StateNoCompany       State = "NO_COMPANY"
	StateCompanySelected State = "COMPANY_SELECTED"
	StateMonthSelected   State = "MONTH_SELECTED"
)

// Session holds one workflow's selection state: company → month → results.
// The machine is re-enterable at any time; calculation gating is per-action
// ("company AND month selected"), not a forward-only stepper. All mutation
// goes through these methods, the result cache included, so stale results
// can never leak across a selection change.
type Session struct {
	ID string

	mu         sync.Mutex
	state      State
	company    company.Company
	month      payslip.Month
	employees  []employee.Employee
	cache      *payslip.ResultCache
	inflight   map[string]struct{}
	lastActive time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:         id,
		state:      StateNoCompany,
		cache:      payslip.NewResultCache(),
		inflight:   make(map[string]struct{}),
		lastActive: time.Now(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectCompany installs a company and its active-employee snapshot. Cached
// payslips belong to the previous selection and are dropped.
func (s *Session) SelectCompany(c company.Company, employees []employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = c
	s.month = payslip.Month{}
	s.employees = employees
	s.state = StateCompanySelected
	s.cache.Reset(payslip.Epoch{})
	s.touch()
}

// SelectMonth keeps the employee snapshot but invalidates cached payslips,
// which are month-specific.
func (s *Session) SelectMonth(m payslip.Month) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateNoCompany {
		return sessionerrors.ErrCompanyNotSelected
	}
	s.month = m
	s.state = StateMonthSelected
	s.cache.Reset(payslip.Epoch{CompanyID: s.company.ID, Month: m.String()})
	s.touch()
	return nil
}

// ClearCompany resets the machine to NoCompany, dropping employees and cache.
func (s *Session) ClearCompany() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = company.Company{}
	s.month = payslip.Month{}
	s.employees = nil
	s.state = StateNoCompany
	s.cache.Reset(payslip.Epoch{})
	s.touch()
}

// Epoch returns the (company, month) pair identifying which results are
// valid, or false when the selection is incomplete.
func (s *Session) Epoch() (payslip.Epoch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateMonthSelected {
		return payslip.Epoch{}, false
	}
	return payslip.Epoch{CompanyID: s.company.ID, Month: s.month.String()}, true
}

func (s *Session) Company() (company.Company, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company, s.state != StateNoCompany
}

func (s *Session) Month() (payslip.Month, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.month, s.state == StateMonthSelected
}

// Employees returns the filtered in-memory snapshot; filtering never
// triggers a refetch.
func (s *Session) Employees(query string) []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return employee.Filter(s.employees, query)
}

func (s *Session) EmployeeByID(id string) (employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.EmployeeID == id {
			return e, true
		}
	}
	return employee.Employee{}, false
}

// Cache exposes the epoch-tagged result store. Reads are safe at any time;
// writes go through Put which enforces the epoch check.
func (s *Session) Cache() *payslip.ResultCache {
	return s.cache
}

// BeginCalculation marks an employee's calculation as in flight. A second
// request for the same employee before the first resolves is rejected rather
// than raced.
func (s *Session) BeginCalculation(employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[employeeID]; busy {
		return sessionerrors.ErrCalculationInFlight
	}
	s.inflight[employeeID] = struct{}{}
	s.touch()
	return nil
}

func (s *Session) EndCalculation(employeeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, employeeID)
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// touch must be called with the lock held.
func (s *Session) touch() {
	s.lastActive = time.Now()
}
