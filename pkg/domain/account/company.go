package account

import (
	"context"
	"fmt"
	"time"
)

// WhitelistChecker verifies a company tax ID against the VAT white-list as of
// a given date. Implementations must bound the call with the context.
type WhitelistChecker interface {
	IsActive(ctx context.Context, nip string, asOf time.Time) (bool, error)
}

// zusMarker is the exact history entry recorded by the mandatory
// social-insurance payment. Its presence is a precondition for company loans.
const zusMarker = "-1775.0"

// CompanyAccount is an account held by a registered company, keyed by NIP.
type CompanyAccount struct {
	base
	companyName string
}

// NewCompany opens a company account. A tax ID of the wrong length skips the
// external check and yields an account marked InvalidIdentifier. A
// well-formed tax ID is verified against the white-list as of today; an
// inactive company, or any failure of the check itself, aborts construction.
func NewCompany(ctx context.Context, companyName, nip string, checker WhitelistChecker) (*CompanyAccount, error) {
	c := &CompanyAccount{companyName: companyName}
	if !ValidNIP(nip) {
		c.identifier = InvalidIdentifier
		return c, nil
	}
	active, err := checker.IsActive(ctx, nip, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompanyNotRegistered, err)
	}
	if !active {
		return nil, ErrCompanyNotRegistered
	}
	c.identifier = nip
	return c, nil
}

// Kind implements Account.
func (c *CompanyAccount) Kind() Kind { return KindCompany }

// CompanyName returns the registered company name. It is immutable after
// construction.
func (c *CompanyAccount) CompanyName() string {
	return c.companyName
}

// Express performs an outgoing transfer with a flat 5.0 fee. Unlike personal
// accounts the principal must be covered by the balance; only the fee may
// push the balance negative.
func (c *CompanyAccount) Express(amount float64) Result {
	const fee = 5.0
	c.mu.Lock()
	defer c.mu.Unlock()
	if amount <= 0 {
		return RejectedNonPositive
	}
	if amount > c.balance {
		return RejectedInsufficientFunds
	}
	c.balance -= amount + fee
	c.history = append(c.history, "-"+formatAmount(amount), formatFee(fee))
	return Applied
}

// TakeLoan approves a loan when the balance covers twice the requested amount
// and the history carries the ZUS payment marker. An approved loan credits
// the balance without a history entry.
func (c *CompanyAccount) TakeLoan(amount float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	approved := c.balance >= amount*2 && c.hasZUSMarker()
	if approved {
		c.balance += amount
	}
	return approved
}

func (c *CompanyAccount) hasZUSMarker() bool {
	for _, entry := range c.history {
		if entry == zusMarker {
			return true
		}
	}
	return false
}

// Snapshot implements Account.
func (c *CompanyAccount) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	history := make([]string, len(c.history))
	copy(history, c.history)
	return Snapshot{
		Type:        KindCompany,
		CompanyName: c.companyName,
		Identifier:  c.identifier,
		Balance:     c.balance,
		History:     history,
	}
}
