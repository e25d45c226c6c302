// Package registry holds the in-memory, insertion-ordered collection of open
// accounts. The registry itself accepts duplicates; identifier uniqueness is
// a policy of the API boundary, not of the collection.
package registry

import (
	"sync"

	"github.com/amirasaad/bank/pkg/domain/account"
)

// Registry is a thread-safe, ordered collection of accounts.
type Registry struct {
	mu       sync.RWMutex
	accounts []account.Account
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends an account. No validation is performed here.
func (r *Registry) Add(a account.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, a)
}

// FindByIdentifier returns the first account whose identifier matches id
// exactly, or nil if there is none.
func (r *Registry) FindByIdentifier(id string) account.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Identifier() == id {
			return a
		}
	}
	return nil
}

// Exists reports whether an account with the given identifier is registered.
func (r *Registry) Exists(id string) bool {
	return r.FindByIdentifier(id) != nil
}

// Remove deletes the given account by identity. It reports whether anything
// was removed.
func (r *Registry) Remove(a account.Account) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.accounts {
		if existing == a {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered accounts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// All returns the accounts in insertion order.
func (r *Registry) All() []account.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]account.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Replace swaps the registry contents, preserving the order of the given
// accounts. Used when loading a persisted snapshot.
func (r *Registry) Replace(accounts []account.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = make([]account.Account, len(accounts))
	copy(r.accounts, accounts)
}
