package payslip

import (
	"errors"
	"sync"
)

// Epoch identifies which cached results are currently valid: the selected
// (company, month) pair. Every calculation request is tagged with the epoch
// it was issued under; a response whose epoch no longer matches is discarded
// so a late arrival from a previous month can never overwrite fresh state.
type Epoch struct {
	CompanyID string
	Month     string
}

func (e Epoch) IsZero() bool {
	return e.CompanyID == "" && e.Month == ""
}

var ErrStaleEpoch = errors.New("selection changed since the request was issued")

// ResultCache maps employee id to the most recently computed payslip for the
// current epoch. Populated only by successful calculations, cleared only by
// selection transitions, never persisted beyond the session.
type ResultCache struct {
	mu      sync.RWMutex
	epoch   Epoch
	results map[string]Payslip
}

func NewResultCache() *ResultCache {
	return &ResultCache{results: make(map[string]Payslip)}
}

// Reset clears all cached payslips and rotates the cache to the given epoch.
func (c *ResultCache) Reset(epoch Epoch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch = epoch
	c.results = make(map[string]Payslip)
}

// Put stores a computed payslip. The write is rejected with ErrStaleEpoch if
// the cache has rotated since the calculation was issued; the prior entry
// (if any) is left untouched either way.
func (c *ResultCache) Put(epoch Epoch, slip Payslip) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return ErrStaleEpoch
	}
	c.results[slip.EmployeeID] = slip
	return nil
}

func (c *ResultCache) Get(employeeID string) (Payslip, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	slip, ok := c.results[employeeID]
	return slip, ok
}

func (c *ResultCache) Epoch() Epoch {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
