package account

import "errors"

var (
	// ErrCompanyNotRegistered is returned when the VAT white-list check for a
	// company tax ID fails, either because the company is inactive or because
	// the check itself could not be completed.
	ErrCompanyNotRegistered = errors.New("company not registered")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateIdentifier is returned when an account with the same
	// identifier already exists.
	ErrDuplicateIdentifier = errors.New("account with this identifier already exists")

	// ErrUnknownAccountType is returned when a persisted snapshot carries an
	// unrecognized type tag.
	ErrUnknownAccountType = errors.New("unknown account type")

	// ErrUnknownPromoPolicy is returned when the configured promotional-bonus
	// policy name is not recognized.
	ErrUnknownPromoPolicy = errors.New("unknown promo policy")
)
