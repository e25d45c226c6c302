package account

import "sync"

// Kind tags the closed set of account variants.
type Kind string

const (
	// KindPersonal is an account held by a natural person, keyed by PESEL.
	KindPersonal Kind = "personal"
	// KindCompany is an account held by a company, keyed by NIP.
	KindCompany Kind = "company"
)

// Result is the outcome of a money-movement operation. Routine business
// failures (non-positive amount, insufficient funds) are not errors: the
// operation is simply not applied and the reason is reported here.
type Result int

const (
	// Applied means the operation mutated balance and history.
	Applied Result = iota
	// RejectedNonPositive means the amount was zero or negative.
	RejectedNonPositive
	// RejectedInsufficientFunds means the balance could not cover the amount.
	RejectedInsufficientFunds
)

// Ok reports whether the operation was applied.
func (r Result) Ok() bool { return r == Applied }

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case RejectedNonPositive:
		return "rejected: amount must be positive"
	case RejectedInsufficientFunds:
		return "rejected: insufficient funds"
	default:
		return "rejected"
	}
}

// Account is the capability set shared by every account variant. Variant
// selection happens through the Kind tag, never through runtime type
// switching in callers of the money-movement primitives.
//
// Invariants:
//   - The identifier is set once at construction and never mutated.
//   - History is append-only; every applied transfer appends one entry for the
//     principal and, for express transfers, one more for the fee.
//   - All mutations are serialized by a per-account mutex.
type Account interface {
	Kind() Kind
	Identifier() string
	Balance() float64
	History() []string
	Incoming(amount float64) Result
	Outgoing(amount float64) Result
	Express(amount float64) Result
	Snapshot() Snapshot
}

// base carries the state and transfer primitives shared by both variants.
type base struct {
	mu         sync.Mutex
	identifier string
	balance    float64
	history    []string
}

// Identifier returns the account's discriminating key, or InvalidIdentifier
// if format validation failed at construction.
func (b *base) Identifier() string {
	return b.identifier
}

// Balance returns the current balance. It may be negative after express
// transfers.
func (b *base) Balance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance
}

// History returns a copy of the transaction log, oldest first.
func (b *base) History() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.history))
	copy(out, b.history)
	return out
}

// Incoming credits the account. Amounts that are not strictly positive leave
// balance and history untouched.
func (b *base) Incoming(amount float64) Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount <= 0 {
		return RejectedNonPositive
	}
	b.balance += amount
	b.history = append(b.history, formatAmount(amount))
	return Applied
}

// Outgoing debits the account. The amount must be strictly positive and no
// greater than the current balance; otherwise nothing changes.
func (b *base) Outgoing(amount float64) Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	if amount <= 0 {
		return RejectedNonPositive
	}
	if amount > b.balance {
		return RejectedInsufficientFunds
	}
	b.balance -= amount
	b.history = append(b.history, "-"+formatAmount(amount))
	return Applied
}
