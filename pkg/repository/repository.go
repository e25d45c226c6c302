// Package repository defines the persistence port for account snapshots.
package repository

import (
	"context"

	"github.com/amirasaad/bank/pkg/domain/account"
)

// AccountsRepository persists the full set of account snapshots as one unit.
// SaveAll replaces whatever was stored before; LoadAll returns the stored
// snapshots in no particular order.
type AccountsRepository interface {
	SaveAll(ctx context.Context, snapshots []account.Snapshot) error
	LoadAll(ctx context.Context) ([]account.Snapshot, error)
}
