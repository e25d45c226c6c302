// Package gormrepo persists account snapshots in a relational store through
// GORM. It is the alternative to the default MongoDB adapter.
package gormrepo

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amirasaad/bank/config"
	"github.com/amirasaad/bank/pkg/domain/account"
)

// Repository implements repository.AccountsRepository on a *gorm.DB.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// New opens a Postgres-backed repository and migrates the accounts table.
func New(cfg config.Postgres, logger *slog.Logger) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&AccountRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate accounts table: %w", err)
	}
	return &Repository{db: db, logger: logger}, nil
}

// NewWithDB wraps an existing *gorm.DB. Used by tests.
func NewWithDB(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// SaveAll replaces the stored snapshot set in one transaction.
func (r *Repository) SaveAll(ctx context.Context, snapshots []account.Snapshot) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&AccountRow{}).Error; err != nil {
			return err
		}
		for _, snap := range snapshots {
			row, err := rowFromSnapshot(snap)
			if err != nil {
				return err
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	r.logger.Info("Accounts saved to postgres", "count", len(snapshots))
	return nil
}

// LoadAll returns every stored snapshot in insertion order.
func (r *Repository) LoadAll(ctx context.Context) ([]account.Snapshot, error) {
	var rows []AccountRow
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	snapshots := make([]account.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := row.toSnapshot()
		if err != nil {
			return nil, fmt.Errorf("failed to decode account %s: %w", row.Identifier, err)
		}
		snapshots = append(snapshots, snap)
	}
	r.logger.Info("Accounts loaded from postgres", "count", len(snapshots))
	return snapshots, nil
}
