package gormrepo

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirasaad/bank/pkg/domain/account"
)

// AccountRow is the relational shape of an account snapshot. History is kept
// as a JSON-encoded array so the row stays flat.
type AccountRow struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Type        string    `gorm:"type:varchar(16);not null"`
	FirstName   string
	LastName    string
	CompanyName string
	Identifier  string `gorm:"index"`
	Balance     float64
	History     string `gorm:"type:text"`
	PromoCode   string
}

// TableName specifies the table name for the AccountRow model.
func (AccountRow) TableName() string {
	return "accounts"
}

func rowFromSnapshot(snap account.Snapshot) (AccountRow, error) {
	history, err := json.Marshal(snap.History)
	if err != nil {
		return AccountRow{}, err
	}
	return AccountRow{
		ID:          uuid.New(),
		Type:        string(snap.Type),
		FirstName:   snap.FirstName,
		LastName:    snap.LastName,
		CompanyName: snap.CompanyName,
		Identifier:  snap.Identifier,
		Balance:     snap.Balance,
		History:     string(history),
		PromoCode:   snap.PromoCode,
	}, nil
}

func (r AccountRow) toSnapshot() (account.Snapshot, error) {
	var history []string
	if r.History != "" {
		if err := json.Unmarshal([]byte(r.History), &history); err != nil {
			return account.Snapshot{}, err
		}
	}
	return account.Snapshot{
		Type:        account.Kind(r.Type),
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		CompanyName: r.CompanyName,
		Identifier:  r.Identifier,
		Balance:     r.Balance,
		History:     history,
		PromoCode:   r.PromoCode,
	}, nil
}
