package account

import (
	"fmt"
	"strings"
	"time"
)

// Notifier delivers outbound messages to a recipient. Implementations report
// delivery as a boolean and never return an error.
type Notifier interface {
	Send(subject, body, recipient string) bool
}

// PersonalAccount is an account held by a natural person. Construction never
// fails: an ill-formatted PESEL produces an account carrying the
// InvalidIdentifier sentinel instead.
type PersonalAccount struct {
	base
	firstName string
	lastName  string
	promoCode string
}

// NewPersonal opens a personal account. The promo code is consumed here and
// has no effect later; the configured policy decides whether it grants the
// opening bonus.
func NewPersonal(firstName, lastName, pesel, promoCode string, policy PromoPolicy) *PersonalAccount {
	p := &PersonalAccount{
		firstName: firstName,
		lastName:  lastName,
		promoCode: promoCode,
	}
	if ValidPESEL(pesel) {
		p.identifier = pesel
	} else {
		p.identifier = InvalidIdentifier
	}
	p.applyPromo(policy)
	return p
}

// Kind implements Account.
func (p *PersonalAccount) Kind() Kind { return KindPersonal }

// FirstName returns the holder's first name.
func (p *PersonalAccount) FirstName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.firstName
}

// LastName returns the holder's last name.
func (p *PersonalAccount) LastName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastName
}

// Rename updates the holder's display names. Empty arguments leave the
// corresponding field unchanged.
func (p *PersonalAccount) Rename(firstName, lastName string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if firstName != "" {
		p.firstName = firstName
	}
	if lastName != "" {
		p.lastName = lastName
	}
}

// Express performs an outgoing transfer with a flat 1.0 fee. Overdraft is
// allowed: once the amount is positive the full amount plus fee is deducted
// regardless of the balance.
func (p *PersonalAccount) Express(amount float64) Result {
	const fee = 1.0
	p.mu.Lock()
	defer p.mu.Unlock()
	if amount <= 0 {
		return RejectedNonPositive
	}
	p.balance -= amount + fee
	p.history = append(p.history, "-"+formatAmount(amount), formatFee(fee))
	return Applied
}

// SubmitForLoan approves a loan when the last three history entries are all
// deposits, or when the last five entries sum to more than the requested
// amount. An approved loan credits the balance without a history entry.
func (p *PersonalAccount) SubmitForLoan(amount float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	approved := lastThreeAreDeposits(p.history) || sumOfLastFiveExceeds(p.history, amount)
	if approved {
		p.balance += amount
	}
	return approved
}

// EmailHistory sends the account's transfer history to the given address and
// reports whether delivery succeeded.
func (p *PersonalAccount) EmailHistory(n Notifier, recipient string) bool {
	today := time.Now().Format("2006-01-02")
	subject := "Account Transfer History " + today
	body := fmt.Sprintf("Personal account history: [%s]", strings.Join(p.History(), ", "))
	return n.Send(subject, body, recipient)
}

// Snapshot implements Account.
func (p *PersonalAccount) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	history := make([]string, len(p.history))
	copy(history, p.history)
	return Snapshot{
		Type:       KindPersonal,
		FirstName:  p.firstName,
		LastName:   p.lastName,
		Identifier: p.identifier,
		Balance:    p.balance,
		History:    history,
		PromoCode:  p.promoCode,
	}
}
