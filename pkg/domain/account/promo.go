package account

import (
	"fmt"
	"strconv"
	"strings"
)

// PromoPolicy names one generation of the promotional-bonus rule applied when
// a personal account is opened. The rule changed between revisions of the
// product and both behaviors are kept selectable so a migration can be
// validated against either one.
type PromoPolicy string

const (
	// PromoZeroOverride is the current rule: holders whose ID encodes a
	// two-digit year of 60 or less with a month code in 1..12 get their
	// opening balance forced to zero; everyone else with a well-formed promo
	// code gets the 50.0 bonus.
	PromoZeroOverride PromoPolicy = "zero-override"

	// PromoBonusOnly is the earlier rule: a well-formed promo code alone
	// grants the 50.0 bonus, with no birth-year condition.
	PromoBonusOnly PromoPolicy = "bonus-only"
)

const (
	promoBonus      = 50.0
	promoCodePrefix = "PROM"
	promoCodeLength = len("PROM_XYZ")
)

// ParsePromoPolicy maps a configured policy name to a PromoPolicy.
func ParsePromoPolicy(s string) (PromoPolicy, error) {
	switch PromoPolicy(s) {
	case PromoZeroOverride, "":
		return PromoZeroOverride, nil
	case PromoBonusOnly:
		return PromoBonusOnly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPromoPolicy, s)
	}
}

func promoCodeWellFormed(code string) bool {
	return strings.HasPrefix(code, promoCodePrefix) && len(code) == promoCodeLength
}

// applyPromo runs once at construction, before the account is handed out, so
// it mutates state without taking the mutex. It does nothing for accounts
// whose identifier failed validation.
func (p *PersonalAccount) applyPromo(policy PromoPolicy) {
	if p.identifier == InvalidIdentifier {
		return
	}
	switch policy {
	case PromoBonusOnly:
		if promoCodeWellFormed(p.promoCode) {
			p.balance += promoBonus
		}
	default:
		yy, yyErr := strconv.Atoi(p.identifier[0:2])
		mm, mmErr := strconv.Atoi(p.identifier[2:4])
		if yyErr == nil && mmErr == nil && yy <= 60 && mm >= 1 && mm <= 12 {
			p.balance = 0.0
			return
		}
		if promoCodeWellFormed(p.promoCode) {
			p.balance += promoBonus
		}
	}
}
