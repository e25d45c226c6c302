package webapi

import "github.com/amirasaad/bank/pkg/domain/account"

//revive:disable

// CreateAccountRequest represents the request body for opening an account.
// The presence of a nip selects the company variant; otherwise a personal
// account is opened from name, surname and pesel.
type CreateAccountRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=128"`
	Surname   string `json:"surname" validate:"omitempty,max=128"`
	Pesel     string `json:"pesel" validate:"omitempty,max=64"`
	Nip       string `json:"nip" validate:"omitempty,max=64"`
	PromoCode string `json:"promo_code" validate:"omitempty,max=32"`
}

// UpdateAccountRequest represents the request body for the PATCH endpoint.
// Only display names are mutable.
type UpdateAccountRequest struct {
	Name    string `json:"name" validate:"omitempty,max=128"`
	Surname string `json:"surname" validate:"omitempty,max=128"`
}

// AccountTransferRequest applies one transfer to a single account.
type AccountTransferRequest struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type" validate:"required"`
}

// TransferRequest moves funds between two registered accounts, or seeds a
// balance when from_account is the synthetic "external" source.
type TransferRequest struct {
	FromAccount string  `json:"from_account" validate:"required"`
	ToAccount   string  `json:"to_account" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Express     bool    `json:"express"`
}

// EmailHistoryRequest asks for the account history to be mailed out.
type EmailHistoryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AccountDTO is the API representation of an account.
type AccountDTO struct {
	Name       string  `json:"name"`
	Surname    string  `json:"surname,omitempty"`
	Identifier string  `json:"identifier"`
	Balance    float64 `json:"balance"`
}

// ToAccountDTO maps an account variant to its API representation. Company
// accounts expose the registered company name in the name field.
func ToAccountDTO(a account.Account) AccountDTO {
	dto := AccountDTO{
		Identifier: a.Identifier(),
		Balance:    a.Balance(),
	}
	switch acc := a.(type) {
	case *account.PersonalAccount:
		dto.Name = acc.FirstName()
		dto.Surname = acc.LastName()
	case *account.CompanyAccount:
		dto.Name = acc.CompanyName()
	}
	return dto
}
