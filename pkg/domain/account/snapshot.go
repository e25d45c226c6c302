package account

import "fmt"

// Snapshot is the flat, serializable record of an account used by the
// persistence adapters. Rehydrating a snapshot restores balance and history
// verbatim; neither the promo policy nor the white-list check runs again.
type Snapshot struct {
	Type        Kind     `json:"type" bson:"type"`
	FirstName   string   `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty" bson:"last_name,omitempty"`
	CompanyName string   `json:"company_name,omitempty" bson:"company_name,omitempty"`
	Identifier  string   `json:"identifier" bson:"identifier"`
	Balance     float64  `json:"balance" bson:"balance"`
	History     []string `json:"history" bson:"history"`
	PromoCode   string   `json:"promo_code,omitempty" bson:"promo_code,omitempty"`
}

// FromSnapshot rebuilds the concrete account variant recorded in s.
func FromSnapshot(s Snapshot) (Account, error) {
	history := make([]string, len(s.History))
	copy(history, s.History)

	switch s.Type {
	case KindPersonal:
		p := &PersonalAccount{
			firstName: s.FirstName,
			lastName:  s.LastName,
			promoCode: s.PromoCode,
		}
		p.identifier = s.Identifier
		p.balance = s.Balance
		p.history = history
		return p, nil
	case KindCompany:
		c := &CompanyAccount{companyName: s.CompanyName}
		c.identifier = s.Identifier
		c.balance = s.Balance
		c.history = history
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, s.Type)
	}
}
